package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LeadStatus tracks a storefront lead through its follow-up pipeline
type LeadStatus int

const (
	LeadStatusNew       LeadStatus = 0
	LeadStatusContacted LeadStatus = 1
	LeadStatusConverted LeadStatus = 2
	LeadStatusClosed    LeadStatus = 3
)

func (s LeadStatus) String() string {
	return [...]string{"New", "Contacted", "Converted", "Closed"}[s]
}

func (s LeadStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LeadStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = LeadStatus(i)
		return nil
	}
	switch str {
	case "New":
		*s = LeadStatusNew
	case "Contacted":
		*s = LeadStatusContacted
	case "Converted":
		*s = LeadStatusConverted
	case "Closed":
		*s = LeadStatusClosed
	}
	return nil
}

func (s LeadStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *LeadStatus) Scan(value interface{}) error {
	if value == nil {
		*s = LeadStatusNew
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = LeadStatus(v)
	case int:
		*s = LeadStatus(v)
	}
	return nil
}
