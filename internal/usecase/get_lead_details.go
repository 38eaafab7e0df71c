package usecase

import (
	"context"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

type LeadDetailsOutput struct {
	Lead     *entity.Lead        `json:"lead"`
	Messages []entity.Message    `json:"messages"`
	Events   []entity.AuditEvent `json:"events"`
}

// GetLeadDetailsUseCase monta a visão de auditoria do lead: dados
// cadastrais, mensagens em ordem cronológica e a trilha de eventos
type GetLeadDetailsUseCase struct {
	LeadRepo    entity.LeadRepositoryInterface
	MessageRepo entity.MessageRepositoryInterface
}

func NewGetLeadDetailsUseCase(leadRepo entity.LeadRepositoryInterface, messageRepo entity.MessageRepositoryInterface) *GetLeadDetailsUseCase {
	return &GetLeadDetailsUseCase{
		LeadRepo:    leadRepo,
		MessageRepo: messageRepo,
	}
}

func (uc *GetLeadDetailsUseCase) Execute(ctx context.Context, leadID string) (*LeadDetailsOutput, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.MessageRepo.GetMessagesForLead(ctx, leadID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load messages: " + err.Error(),
		}
	}

	events, err := uc.LeadRepo.GetEventsForLead(ctx, leadID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load events: " + err.Error(),
		}
	}

	return &LeadDetailsOutput{
		Lead:     lead,
		Messages: messages,
		Events:   events,
	}, nil
}
