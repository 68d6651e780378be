package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineItems(t *testing.T) {
	t.Run("reads name from either legacy key", func(t *testing.T) {
		payload := json.RawMessage(`[
			{"id": "1", "name": "Teak Side Table", "quantity": 2, "unit_price": 4500},
			{"id": "2", "product_name": "Steel Frame", "quantity": 1, "unit_price": 1200}
		]`)

		items := ParseLineItems(payload)
		require.Len(t, items, 2)
		assert.Equal(t, "Teak Side Table", items[0].Name)
		assert.Equal(t, "Steel Frame", items[1].Name)
	})

	t.Run("name key wins over product_name when both present", func(t *testing.T) {
		payload := json.RawMessage(`[{"name": "New Name", "product_name": "Old Name"}]`)

		items := ParseLineItems(payload)
		require.Len(t, items, 1)
		assert.Equal(t, "New Name", items[0].Name)
	})

	t.Run("defaults quantity to 1 and price to 0", func(t *testing.T) {
		payload := json.RawMessage(`[{"name": "Custom Shelving"}]`)

		items := ParseLineItems(payload)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, int64(0), items[0].UnitPrice)
		assert.Equal(t, int64(0), items[0].LineTotal)
	})

	t.Run("computes line total when absent", func(t *testing.T) {
		payload := json.RawMessage(`[{"name": "Chair", "quantity": 3, "unit_price": 1250.50}]`)

		items := ParseLineItems(payload)
		require.Len(t, items, 1)
		assert.Equal(t, int64(125050), items[0].UnitPrice)
		assert.Equal(t, int64(375150), items[0].LineTotal)
	})

	t.Run("stored line total is read, not recomputed", func(t *testing.T) {
		payload := json.RawMessage(`[{"name": "Chair", "quantity": 3, "unit_price": 100, "line_total": 250}]`)

		items := ParseLineItems(payload)
		require.Len(t, items, 1)
		assert.Equal(t, int64(25000), items[0].LineTotal)
	})

	t.Run("numeric id is carried as a string", func(t *testing.T) {
		payload := json.RawMessage(`[{"id": 7, "name": "Bench"}]`)

		items := ParseLineItems(payload)
		require.Len(t, items, 1)
		assert.Equal(t, "7", items[0].ID)
	})

	t.Run("customization note is optional", func(t *testing.T) {
		payload := json.RawMessage(`[{"name": "Desk", "customization_note": "matte black finish"}]`)

		items := ParseLineItems(payload)
		require.Len(t, items, 1)
		assert.Equal(t, "matte black finish", items[0].CustomizationNote)
	})

	t.Run("empty and malformed payloads yield no items", func(t *testing.T) {
		assert.Nil(t, ParseLineItems(nil))
		assert.Nil(t, ParseLineItems(json.RawMessage(``)))
		assert.Nil(t, ParseLineItems(json.RawMessage(`{"not": "an array"}`)))
	})
}
