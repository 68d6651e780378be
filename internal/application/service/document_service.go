package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kipkoechd/fabworks-api/internal/document"
	"github.com/kipkoechd/fabworks-api/internal/domain/repository"
	"github.com/kipkoechd/fabworks-api/internal/pdf"
	"github.com/kipkoechd/fabworks-api/pkg/apperror"
	"github.com/kipkoechd/fabworks-api/pkg/printer"
)

// satelliteTimeout bounds each satellite lookup during document assembly.
// A slow or failing satellite degrades to absent rather than failing the
// whole document.
const satelliteTimeout = 2 * time.Second

// DocumentService assembles canonical order documents and drives the
// invoice, shipping label and quotation renderers.
type DocumentService struct {
	orderRepo       repository.OrderRepository
	shippingRepo    repository.OrderShippingAddressRepository
	billingRepo     repository.OrderBillingAddressRepository
	detailRepo      repository.OrderCustomerDetailRepository
	paymentRepo     repository.OrderPaymentDetailRepository
	quotationRepo   repository.QuotationRepository
	settingsService *SettingsService
	printer         printer.Printer
	printerType     string
	log             zerolog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	orderRepo repository.OrderRepository,
	shippingRepo repository.OrderShippingAddressRepository,
	billingRepo repository.OrderBillingAddressRepository,
	detailRepo repository.OrderCustomerDetailRepository,
	paymentRepo repository.OrderPaymentDetailRepository,
	quotationRepo repository.QuotationRepository,
	settingsService *SettingsService,
	p printer.Printer,
	printerType string,
	log zerolog.Logger,
) *DocumentService {
	return &DocumentService{
		orderRepo:       orderRepo,
		shippingRepo:    shippingRepo,
		billingRepo:     billingRepo,
		detailRepo:      detailRepo,
		paymentRepo:     paymentRepo,
		quotationRepo:   quotationRepo,
		settingsService: settingsService,
		printer:         p,
		printerType:     printerType,
		log:             log,
	}
}

// BuildOrderDocument loads an order and its satellite records and
// normalizes them into the canonical document. Satellite lookups run
// concurrently; any lookup that errors or times out is treated as absent
// so that a degraded order still renders.
func (s *DocumentService) BuildOrderDocument(ctx context.Context, orderID uuid.UUID) (*document.OrderDocument, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	in := document.Input{Order: order}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		in.Shipping = fetchSatellite(gctx, s.log, "shipping_address", orderID, s.shippingRepo.GetByOrderID)
		return nil
	})
	g.Go(func() error {
		in.Billing = fetchSatellite(gctx, s.log, "billing_address", orderID, s.billingRepo.GetByOrderID)
		return nil
	})
	g.Go(func() error {
		in.CustomerDetail = fetchSatellite(gctx, s.log, "customer_detail", orderID, s.detailRepo.GetByOrderID)
		return nil
	})
	g.Go(func() error {
		in.Payment = fetchSatellite(gctx, s.log, "payment_detail", orderID, s.paymentRepo.GetByOrderID)
		return nil
	})
	_ = g.Wait()

	doc := document.Normalize(in)
	return &doc, nil
}

// fetchSatellite runs one satellite lookup under a bounded timeout and
// maps every failure to absence.
func fetchSatellite[T any](ctx context.Context, log zerolog.Logger, name string, orderID uuid.UUID, get func(context.Context, uuid.UUID) (*T, error)) *T {
	ctx, cancel := context.WithTimeout(ctx, satelliteTimeout)
	defer cancel()

	record, err := get(ctx, orderID)
	if err != nil {
		log.Warn().Err(err).Str("satellite", name).Str("order_id", orderID.String()).Msg("satellite lookup failed, rendering without it")
		return nil
	}
	return record
}

// PrintInvoice renders an order invoice and sends it to the printer.
// The document is returned even when printing fails so the handler can
// surface it alongside the warning.
func (s *DocumentService) PrintInvoice(ctx context.Context, orderID uuid.UUID) (*document.OrderDocument, error) {
	doc, err := s.BuildOrderDocument(ctx, orderID)
	if err != nil {
		return nil, err
	}

	org, err := s.settingsService.GetOrganization(ctx)
	if err != nil {
		return nil, err
	}

	data := document.RenderInvoice(*doc, org)
	if err := s.printer.Print(data); err != nil {
		s.log.Error().Err(err).Str("order_id", orderID.String()).Msg("invoice print failed")
		return doc, fmt.Errorf("failed to print invoice: %w", err)
	}

	return doc, nil
}

// PrintLabel renders a 4x6 shipping label and sends it to the printer
func (s *DocumentService) PrintLabel(ctx context.Context, orderID uuid.UUID) (*document.OrderDocument, error) {
	doc, err := s.BuildOrderDocument(ctx, orderID)
	if err != nil {
		return nil, err
	}

	org, err := s.settingsService.GetOrganization(ctx)
	if err != nil {
		return nil, err
	}

	data := document.RenderLabel(*doc, org)
	if err := s.printer.Print(data); err != nil {
		s.log.Error().Err(err).Str("order_id", orderID.String()).Msg("label print failed")
		return doc, fmt.Errorf("failed to print label: %w", err)
	}

	return doc, nil
}

// InvoicePDF renders an order invoice as a PDF
func (s *DocumentService) InvoicePDF(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	doc, err := s.BuildOrderDocument(ctx, orderID)
	if err != nil {
		return nil, err
	}

	org, err := s.settingsService.GetOrganization(ctx)
	if err != nil {
		return nil, err
	}

	return pdf.Invoice(*doc, org)
}

// LabelPDF renders a 4x6 shipping label as a PDF
func (s *DocumentService) LabelPDF(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	doc, err := s.BuildOrderDocument(ctx, orderID)
	if err != nil {
		return nil, err
	}

	org, err := s.settingsService.GetOrganization(ctx)
	if err != nil {
		return nil, err
	}

	return pdf.Label(*doc, org)
}

// BuildQuotationDocument loads a quotation and maps it onto its document
func (s *DocumentService) BuildQuotationDocument(ctx context.Context, quotationID uuid.UUID) (*document.QuotationDocument, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	doc := document.BuildQuotation(quotation)
	return &doc, nil
}

// PrintQuotation renders a quotation and sends it to the printer
func (s *DocumentService) PrintQuotation(ctx context.Context, quotationID uuid.UUID) (*document.QuotationDocument, error) {
	doc, err := s.BuildQuotationDocument(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	org, err := s.settingsService.GetOrganization(ctx)
	if err != nil {
		return nil, err
	}

	data := document.RenderQuotation(*doc, org)
	if err := s.printer.Print(data); err != nil {
		s.log.Error().Err(err).Str("quotation_id", quotationID.String()).Msg("quotation print failed")
		return doc, fmt.Errorf("failed to print quotation: %w", err)
	}

	return doc, nil
}

// QuotationPDF renders a quotation as a PDF
func (s *DocumentService) QuotationPDF(ctx context.Context, quotationID uuid.UUID) ([]byte, error) {
	doc, err := s.BuildQuotationDocument(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	org, err := s.settingsService.GetOrganization(ctx)
	if err != nil {
		return nil, err
	}

	return pdf.Quotation(*doc, org)
}

// PrinterStatus returns the current printer status information
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status
func (s *DocumentService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a short test page to the printer
func (s *DocumentService) TestPrint(ctx context.Context) error {
	org, err := s.settingsService.GetOrganization(ctx)
	if err != nil {
		return err
	}

	d := printer.NewDocument(48)
	d.Init()
	d.SetAlign(printer.AlignCenter)
	d.SetBold(true)
	d.Text("PRINTER TEST")
	d.SetBold(false)
	d.Text(org.Name)
	d.Text(time.Now().Format("2006-01-02 15:04"))
	d.FeedLines(3)
	d.Cut()

	if err := s.printer.Print(d.Bytes()); err != nil {
		return fmt.Errorf("test print failed: %w", err)
	}
	return nil
}
