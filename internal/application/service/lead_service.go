package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"github.com/kipkoechd/fabworks-api/internal/domain/repository"
	"github.com/kipkoechd/fabworks-api/pkg/apperror"
	"github.com/kipkoechd/fabworks-api/pkg/email"
	"github.com/kipkoechd/fabworks-api/pkg/pagination"
)

// LeadService handles storefront enquiry operations
type LeadService struct {
	leadRepo     repository.LeadRepository
	emailService *email.EmailService
	log          zerolog.Logger
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repository.LeadRepository, emailService *email.EmailService, log zerolog.Logger) *LeadService {
	return &LeadService{
		leadRepo:     leadRepo,
		emailService: emailService,
		log:          log,
	}
}

// CreateLeadInput represents the public enquiry form payload
type CreateLeadInput struct {
	Name    string
	Email   *string
	Phone   *string
	Company *string
	Message string
	Source  string
}

// CreateLead captures a public enquiry. The admin alert email is sent
// best effort; a mail failure never fails the capture.
func (s *LeadService) CreateLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error) {
	source := input.Source
	if source == "" {
		source = "storefront"
	}

	lead := &entity.Lead{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Message: input.Message,
		Source:  source,
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	notification := email.LeadNotification{
		Name:    lead.Name,
		Source:  lead.Source,
		Message: lead.Message,
	}
	if lead.Email != nil {
		notification.Email = *lead.Email
	}
	if lead.Phone != nil {
		notification.Phone = *lead.Phone
	}
	if err := s.emailService.SendLeadNotification(notification); err != nil {
		s.log.Warn().Err(err).Str("lead_id", lead.ID.String()).Msg("failed to send lead notification email")
	}

	return lead, nil
}

// GetLead retrieves a lead by ID
func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// ListLeads lists leads with optional status filtering
func (s *LeadService) ListLeads(ctx context.Context, params *pagination.PaginationParams, status *enum.LeadStatus, search string) (*pagination.PaginatedResult[entity.Lead], error) {
	leads, total, err := s.leadRepo.List(ctx, params, status, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(leads, pag), nil
}

// UpdateLeadStatus moves a lead through its lifecycle and records which
// user handled it.
func (s *LeadService) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status enum.LeadStatus, handledBy uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	lead.Status = status
	lead.HandledBy = &handledBy
	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

// DeleteLead deletes a lead
func (s *LeadService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}
	return s.leadRepo.Delete(ctx, id)
}
