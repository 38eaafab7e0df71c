package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

// SendMessagesOnLeadAddedHandler reage ao lead.added: gera o lote de
// mensagens por canal, persiste tudo atomicamente junto com o evento
// derivado lead.messages.sent e despacha um send-message por mensagem
// salva pelo command bus.
type SendMessagesOnLeadAddedHandler struct {
	Generator   *MessageGenerator
	MessageRepo entity.MessageRepositoryInterface
	Bus         CommandBusInterface
	Events      *EventDispatcher
}

func NewSendMessagesOnLeadAddedHandler(
	generator *MessageGenerator,
	messageRepo entity.MessageRepositoryInterface,
	bus CommandBusInterface,
	events *EventDispatcher,
) *SendMessagesOnLeadAddedHandler {
	return &SendMessagesOnLeadAddedHandler{
		Generator:   generator,
		MessageRepo: messageRepo,
		Bus:         bus,
		Events:      events,
	}
}

func (h *SendMessagesOnLeadAddedHandler) Handle(ctx context.Context, raw any) error {
	event, ok := raw.(*entity.LeadAddedEvent)
	if !ok {
		return fmt.Errorf("payload inesperado para %s: %T", entity.LeadAddedEventName, raw)
	}

	messages, err := h.Generator.Generate(ctx, event)
	if err != nil {
		return err
	}

	savedMessages, sentEvent, err := h.MessageRepo.SaveMessagesSent(ctx, entity.SaveMessagesSentInput{
		Messages:       messages,
		LeadID:         event.LeadID,
		CorrelationIDs: event.CorrelationIDs.With(entity.CorrelationTriggeredBy, event.ID),
	})
	if err != nil {
		return &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "falha ao persistir mensagens geradas: " + err.Error(),
		}
	}

	h.Events.Publish(ctx, entity.LeadMessagesSentEventName, sentEvent)

	if len(savedMessages) == 0 {
		log.Printf("⚠️ [OUTREACH] Lead %s sem canais de contato, nenhum comando despachado", event.LeadID)
		return nil
	}

	commands, err := h.buildCommands(savedMessages, event, sentEvent)
	if err != nil {
		return err
	}

	return h.dispatchAll(ctx, commands)
}

// buildCommands estende a cadeia de correlação do evento gatilho com o id
// do evento derivado, o id do gatilho e o lead
func (h *SendMessagesOnLeadAddedHandler) buildCommands(
	savedMessages []entity.SavedMessage,
	event *entity.LeadAddedEvent,
	sentEvent *entity.LeadMessagesSentEvent,
) ([]*entity.Command, error) {
	correlationIDs := event.CorrelationIDs.
		With(entity.CorrelationEventID, sentEvent.ID).
		With(entity.CorrelationTriggeredBy, event.ID).
		With(entity.CorrelationLeadID, event.LeadID)

	commands := make([]*entity.Command, 0, len(savedMessages))
	for _, saved := range savedMessages {
		command, err := entity.NewSendMessageCommand(correlationIDs, saved.Message)
		if err != nil {
			return nil, fmt.Errorf("falha ao montar comando send-message: %w", err)
		}
		commands = append(commands, command)
	}
	return commands, nil
}

// dispatchAll envia todos os comandos em paralelo e espera o join; a
// primeira falha é devolvida. Um comando que falha não desfaz as
// mensagens já persistidas, esse gap fica para reconciliação externa.
func (h *SendMessagesOnLeadAddedHandler) dispatchAll(ctx context.Context, commands []*entity.Command) error {
	errs := make([]error, len(commands))

	var wg sync.WaitGroup
	for i, command := range commands {
		wg.Add(1)
		go func(i int, command *entity.Command) {
			defer wg.Done()
			errs[i] = h.Bus.Send(ctx, command)
		}(i, command)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return &TechnicalError{
				Code:    CodeEnqueueFailed,
				Message: "falha ao enfileirar comando: " + err.Error(),
			}
		}
	}
	return nil
}
