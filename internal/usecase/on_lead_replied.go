package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

// ReplyOnLeadRepliedHandler reage ao lead.replied: gera a resposta no
// mesmo canal em que o lead respondeu, alimentando o generator com o
// histórico de mensagens daquele lead, persiste a resposta junto com o
// evento derivado e despacha um único send-message.
type ReplyOnLeadRepliedHandler struct {
	Registry    *ContentGeneratorRegistry
	MessageRepo entity.MessageRepositoryInterface
	Bus         CommandBusInterface
	Events      *EventDispatcher
}

func NewReplyOnLeadRepliedHandler(
	registry *ContentGeneratorRegistry,
	messageRepo entity.MessageRepositoryInterface,
	bus CommandBusInterface,
	events *EventDispatcher,
) *ReplyOnLeadRepliedHandler {
	return &ReplyOnLeadRepliedHandler{
		Registry:    registry,
		MessageRepo: messageRepo,
		Bus:         bus,
		Events:      events,
	}
}

func (h *ReplyOnLeadRepliedHandler) Handle(ctx context.Context, raw any) error {
	event, ok := raw.(*entity.LeadRepliedEvent)
	if !ok {
		return fmt.Errorf("payload inesperado para %s: %T", entity.LeadRepliedEventName, raw)
	}

	previousMessages, err := h.MessageRepo.GetMessagesForLead(ctx, event.Payload.Lead.ID)
	if err != nil {
		return &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "falha ao buscar histórico de mensagens: " + err.Error(),
		}
	}

	channel := event.Payload.LeadMessage.Channel

	// O generator só enxerga o histórico do canal em que o lead respondeu
	channelHistory := make([]entity.Message, 0, len(previousMessages))
	for _, m := range previousMessages {
		if m.Channel == channel {
			channelHistory = append(channelHistory, m)
		}
	}

	generator, ok := h.Registry.Get(channel)
	if !ok {
		return &DomainError{
			Code:    CodeChannelNotRegistered,
			Message: "nenhum content generator registrado para o canal: " + string(channel),
		}
	}

	replyContent, err := generator.GenerateForReply(ctx, event, channelHistory)
	if err != nil {
		return &TechnicalError{
			Code:    CodeGenerationFailed,
			Message: "falha ao gerar resposta para o canal " + string(channel) + ": " + err.Error(),
		}
	}

	replyMessage := entity.NewMessage(replyContent)

	savedMessage, sentEvent, err := h.MessageRepo.SaveMessageSentToReply(ctx, entity.SaveMessageSentToReplyInput{
		Message:          replyMessage,
		LeadID:           event.Payload.Lead.ID,
		ReplyToMessageID: event.Payload.LeadMessage.ID,
		CorrelationIDs:   event.CorrelationIDs.With(entity.CorrelationTriggeredBy, event.ID),
	})
	if err != nil {
		return &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "falha ao persistir resposta gerada: " + err.Error(),
		}
	}

	h.Events.Publish(ctx, entity.MessageSentToReplyEventName, sentEvent)

	correlationIDs := event.CorrelationIDs.
		With(entity.CorrelationEventID, sentEvent.ID).
		With(entity.CorrelationTriggeredBy, event.ID).
		With(entity.CorrelationLeadID, event.Payload.Lead.ID)

	command, err := entity.NewSendMessageCommand(correlationIDs, savedMessage.Message)
	if err != nil {
		return fmt.Errorf("falha ao montar comando send-message: %w", err)
	}

	if err := h.Bus.Send(ctx, command); err != nil {
		return &TechnicalError{
			Code:    CodeEnqueueFailed,
			Message: "falha ao enfileirar comando: " + err.Error(),
		}
	}
	return nil
}
