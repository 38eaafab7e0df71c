package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/xavierca1/salespad-outreach/internal/entity"
)

type ReplyToLeadUseCaseInput struct {
	LeadID         string
	ChannelMessage entity.ChannelMessage
	RequestID      string
}

type ReplyToLeadUseCaseOutput struct {
	MessageID string `json:"messageId"`
}

// ReplyToLeadUseCase registra a resposta recebida do lead e publica o
// lead.replied. A transição new -> replied acontece dentro da mesma
// transação que grava a mensagem e o evento, no repositório.
type ReplyToLeadUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	Events   *EventDispatcher
}

func NewReplyToLeadUseCase(leadRepo entity.LeadRepositoryInterface, events *EventDispatcher) *ReplyToLeadUseCase {
	return &ReplyToLeadUseCase{
		LeadRepo: leadRepo,
		Events:   events,
	}
}

func (uc *ReplyToLeadUseCase) Execute(ctx context.Context, input ReplyToLeadUseCaseInput) (*ReplyToLeadUseCaseOutput, error) {
	validationErrors := ValidateReplyInput(input)
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
	if input.RequestID != "" {
		correlationIDs = correlationIDs.With(entity.CorrelationRequestID, input.RequestID)
	}
	correlationIDs = correlationIDs.With(entity.CorrelationReplyID, uuid.New().String())

	replyMessage := entity.NewMessage(input.ChannelMessage)

	_, event, err := uc.LeadRepo.ReplyToLead(ctx, entity.ReplyToLeadInput{
		LeadID:         input.LeadID,
		ReplyMessage:   replyMessage,
		CorrelationIDs: correlationIDs,
	})
	if err != nil {
		if IsDomainError(err) {
			return nil, err
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to persist lead reply: " + err.Error(),
		}
	}

	uc.Events.Publish(ctx, entity.LeadRepliedEventName, event)

	return &ReplyToLeadUseCaseOutput{MessageID: replyMessage.ID}, nil
}
