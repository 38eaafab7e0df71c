package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/salespad-outreach/internal/entity"
)

type AddLeadUseCaseInput struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	RequestID string `json:"-"`
}

type AddLeadUseCaseOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddLeadUseCase cria o lead e publica o lead.added que dispara o
// outreach inicial. A criação do lead e a escrita do evento saem na
// mesma transação do repositório.
type AddLeadUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	Events   *EventDispatcher
}

func NewAddLeadUseCase(leadRepo entity.LeadRepositoryInterface, events *EventDispatcher) *AddLeadUseCase {
	return &AddLeadUseCase{
		LeadRepo: leadRepo,
		Events:   events,
	}
}

func (uc *AddLeadUseCase) Execute(ctx context.Context, input AddLeadUseCaseInput) (*AddLeadUseCaseOutput, error) {
	validationErrors := ValidateAddLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    CodeValidationError,
			Message: errMsg,
		}
	}

	correlationIDs := entity.CorrelationIDs{}
	requestID := input.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}
	correlationIDs = correlationIDs.With(entity.CorrelationRequestID, requestID)

	lead, event, err := uc.LeadRepo.AddLead(ctx, entity.AddLeadInput{
		Lead:           entity.NewLead(input.Name, input.Email, input.Phone),
		CorrelationIDs: correlationIDs,
	})
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	uc.Events.Publish(ctx, entity.LeadAddedEventName, event)

	return &AddLeadUseCaseOutput{
		ID:        lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Status:    lead.Status,
		CreatedAt: lead.CreatedAt,
		UpdatedAt: lead.UpdatedAt,
	}, nil
}
