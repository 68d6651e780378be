package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipkoechd/fabworks-api/internal/config"
	"github.com/kipkoechd/fabworks-api/internal/document"
	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"github.com/kipkoechd/fabworks-api/internal/domain/repository"
	"github.com/kipkoechd/fabworks-api/pkg/printer"
)

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *entity.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.OrderNo != nil && *o.OrderNo == orderNo {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, o *entity.Order) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) List(ctx context.Context, userID uuid.UUID, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}

type fakeShippingRepo struct {
	record *entity.OrderShippingAddress
	err    error
}

func (f *fakeShippingRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderShippingAddress, error) {
	return f.record, f.err
}
func (f *fakeShippingRepo) Upsert(ctx context.Context, a *entity.OrderShippingAddress) error {
	f.record = a
	return nil
}
func (f *fakeShippingRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	f.record = nil
	return nil
}

type fakeBillingRepo struct {
	record *entity.OrderBillingAddress
	err    error
}

func (f *fakeBillingRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderBillingAddress, error) {
	return f.record, f.err
}
func (f *fakeBillingRepo) Upsert(ctx context.Context, a *entity.OrderBillingAddress) error {
	f.record = a
	return nil
}
func (f *fakeBillingRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	f.record = nil
	return nil
}

type fakeDetailRepo struct {
	record *entity.OrderCustomerDetail
	err    error
}

func (f *fakeDetailRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderCustomerDetail, error) {
	return f.record, f.err
}
func (f *fakeDetailRepo) Upsert(ctx context.Context, d *entity.OrderCustomerDetail) error {
	f.record = d
	return nil
}
func (f *fakeDetailRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	f.record = nil
	return nil
}

type fakePaymentRepo struct {
	record *entity.OrderPaymentDetail
	err    error
}

func (f *fakePaymentRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderPaymentDetail, error) {
	return f.record, f.err
}
func (f *fakePaymentRepo) Upsert(ctx context.Context, d *entity.OrderPaymentDetail) error {
	f.record = d
	return nil
}
func (f *fakePaymentRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	f.record = nil
	return nil
}

type fakeQuotationRepo struct {
	quotations map[uuid.UUID]*entity.RentalQuotation
}

func (f *fakeQuotationRepo) Create(ctx context.Context, q *entity.RentalQuotation) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	f.quotations[q.ID] = q
	return nil
}

func (f *fakeQuotationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.RentalQuotation, error) {
	return f.quotations[id], nil
}

func (f *fakeQuotationRepo) GetByRef(ctx context.Context, ref string) (*entity.RentalQuotation, error) {
	for _, q := range f.quotations {
		if q.QuotationRef == ref {
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuotationRepo) Update(ctx context.Context, q *entity.RentalQuotation) error {
	f.quotations[q.ID] = q
	return nil
}

func (f *fakeQuotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.quotations, id)
	return nil
}

func (f *fakeQuotationRepo) List(ctx context.Context, userID uuid.UUID, params *repository.QuotationFilterParams) ([]entity.RentalQuotation, int64, error) {
	var out []entity.RentalQuotation
	for _, q := range f.quotations {
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}

func (f *fakeQuotationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	if q, ok := f.quotations[id]; ok {
		q.Status = status
	}
	return nil
}

type fakeSettingsRepo struct {
	settings *entity.OrganizationSettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*entity.OrganizationSettings, error) {
	return f.settings, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, s *entity.OrganizationSettings) error {
	f.settings = s
	return nil
}

type recordingPrinter struct {
	jobs [][]byte
	err  error
}

func (p *recordingPrinter) Print(data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, data)
	return nil
}
func (p *recordingPrinter) Close() error      { return nil }
func (p *recordingPrinter) IsConnected() bool { return true }

func testOrgConfig() *config.OrganizationConfig {
	return &config.OrganizationConfig{
		Name:     "Fabworks Furniture & Fabrication",
		Address:  "Plot 14, Industrial Area, Pune",
		Email:    "office@fabworks.example",
		Phone:    "+91 98220 00000",
		GSTIN:    "27AABCF1234A1Z5",
		Currency: "INR",
		Glyph:    "Rs ",
		Locale:   "en-IN",
	}
}

type documentServiceFixture struct {
	service   *DocumentService
	orderRepo *fakeOrderRepo
	shipping  *fakeShippingRepo
	billing   *fakeBillingRepo
	detail    *fakeDetailRepo
	payment   *fakePaymentRepo
	quotation *fakeQuotationRepo
	printer   *recordingPrinter
}

func newDocumentServiceFixture() *documentServiceFixture {
	f := &documentServiceFixture{
		orderRepo: &fakeOrderRepo{orders: map[uuid.UUID]*entity.Order{}},
		shipping:  &fakeShippingRepo{},
		billing:   &fakeBillingRepo{},
		detail:    &fakeDetailRepo{},
		payment:   &fakePaymentRepo{},
		quotation: &fakeQuotationRepo{quotations: map[uuid.UUID]*entity.RentalQuotation{}},
		printer:   &recordingPrinter{},
	}
	settings := NewSettingsService(&fakeSettingsRepo{}, testOrgConfig())
	f.service = NewDocumentService(
		f.orderRepo, f.shipping, f.billing, f.detail, f.payment, f.quotation,
		settings, f.printer, "network", zerolog.Nop(),
	)
	return f
}

func seedOrder(f *documentServiceFixture) *entity.Order {
	orderNo := "ORD-77AA11BB"
	name := "Asha Mehta"
	phone := "+91 98220 11111"
	email := "asha@example.com"
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		OrderNo:       &orderNo,
		Category:      "catalog",
		Items:         []byte(`[{"id":"1","name":"Workbench","quantity":2,"unit_price":5000,"line_total":10000}]`),
		CustomerName:  &name,
		CustomerPhone: &phone,
		CustomerEmail: &email,
		CreatedAt:     time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC),
	}
	f.orderRepo.orders[order.ID] = order
	return order
}

func TestBuildOrderDocument(t *testing.T) {
	f := newDocumentServiceFixture()
	order := seedOrder(f)
	f.billing.record = &entity.OrderBillingAddress{
		OrderID: order.ID,
		Line1:   "12 Main St", City: "Pune", State: "MH", PostalCode: "411001", Country: "India",
	}
	f.payment.record = &entity.OrderPaymentDetail{OrderID: order.ID, Status: "paid"}

	doc, err := f.service.BuildOrderDocument(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, "ORD-77AA11BB", doc.ID)
	assert.Equal(t, "Asha Mehta", doc.CustomerName)
	assert.Equal(t, "paid", doc.PaymentStatus)
	assert.Equal(t, int64(1000000), doc.Total)
	// no shipping satellite, so the billing address serves both roles
	assert.Equal(t, doc.BillingAddress, doc.ShippingAddress)
}

func TestBuildOrderDocumentNotFound(t *testing.T) {
	f := newDocumentServiceFixture()

	_, err := f.service.BuildOrderDocument(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestBuildOrderDocumentSatelliteFailureDegrades(t *testing.T) {
	f := newDocumentServiceFixture()
	order := seedOrder(f)
	f.shipping.err = errors.New("connection reset")
	f.billing.err = errors.New("connection reset")
	f.payment.err = errors.New("connection reset")

	doc, err := f.service.BuildOrderDocument(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, document.AddressPending, doc.ShippingAddress)
	assert.Equal(t, document.AddressPending, doc.BillingAddress)
	assert.Equal(t, document.DefaultPaymentStatus, doc.PaymentStatus)
	// contact still resolves from the order row embeds
	assert.Equal(t, "Asha Mehta", doc.CustomerName)
}

func TestPrintInvoice(t *testing.T) {
	f := newDocumentServiceFixture()
	order := seedOrder(f)

	doc, err := f.service.PrintInvoice(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, f.printer.jobs, 1)
	assert.Contains(t, string(f.printer.jobs[0]), doc.ID)
}

func TestPrintInvoiceFailureStillReturnsDocument(t *testing.T) {
	f := newDocumentServiceFixture()
	order := seedOrder(f)
	f.printer.err = errors.New("device offline")

	doc, err := f.service.PrintInvoice(context.Background(), order.ID)
	assert.Error(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "ORD-77AA11BB", doc.ID)
}

func TestPrintLabel(t *testing.T) {
	f := newDocumentServiceFixture()
	order := seedOrder(f)

	doc, err := f.service.PrintLabel(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, f.printer.jobs, 1)
	assert.Contains(t, string(f.printer.jobs[0]), document.ServiceLevelMarker)
	assert.NotNil(t, doc)
}

func TestInvoicePDF(t *testing.T) {
	f := newDocumentServiceFixture()
	order := seedOrder(f)

	data, err := f.service.InvoicePDF(context.Background(), order.ID)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestLabelPDF(t *testing.T) {
	f := newDocumentServiceFixture()
	order := seedOrder(f)

	data, err := f.service.LabelPDF(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPrintQuotation(t *testing.T) {
	f := newDocumentServiceFixture()
	quotation := &entity.RentalQuotation{
		ID:                 uuid.New(),
		QuotationRef:       "QTN-55CC22DD",
		CustomerName:       "Vertex Offices LLP",
		ProductDescription: "Ergonomic task chairs",
		RentalTermMonths:   12,
		Quantity:           40,
	}
	f.quotation.quotations[quotation.ID] = quotation

	doc, err := f.service.PrintQuotation(context.Background(), quotation.ID)
	require.NoError(t, err)
	require.Len(t, f.printer.jobs, 1)
	assert.Equal(t, "QTN-55CC22DD", doc.Ref)
	assert.Equal(t, document.DefaultValidity, doc.ValidUntil)
}

func TestQuotationPDF(t *testing.T) {
	f := newDocumentServiceFixture()
	quotation := &entity.RentalQuotation{
		ID:                 uuid.New(),
		QuotationRef:       "QTN-55CC22DD",
		CustomerName:       "Vertex Offices LLP",
		ProductDescription: "Ergonomic task chairs",
	}
	f.quotation.quotations[quotation.ID] = quotation

	data, err := f.service.QuotationPDF(context.Background(), quotation.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGetPrinterStatus(t *testing.T) {
	f := newDocumentServiceFixture()

	status := f.service.GetPrinterStatus()
	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, "network", status.Type)
}

func TestTestPrint(t *testing.T) {
	f := newDocumentServiceFixture()

	err := f.service.TestPrint(context.Background())
	require.NoError(t, err)
	require.Len(t, f.printer.jobs, 1)
	assert.Contains(t, string(f.printer.jobs[0]), "PRINTER TEST")
}

var _ printer.Printer = (*recordingPrinter)(nil)
