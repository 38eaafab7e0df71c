package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

func leadRepliedEvent(leadMessage *entity.Message) *entity.LeadRepliedEvent {
	return &entity.LeadRepliedEvent{
		ID:             "reply-e1",
		LeadID:         "lead-1",
		CorrelationIDs: entity.CorrelationIDs{"requestId": "r1", "replyId": "reply-1"},
		Payload: entity.LeadRepliedPayload{
			Lead: entity.Lead{
				ID:     "lead-1",
				Name:   "John Doe",
				Email:  "john@x.com",
				Status: entity.LeadStatusReplied,
			},
			LeadMessage: *leadMessage,
		},
		CreatedAt: time.Now(),
	}
}

func replyRegistry() *ContentGeneratorRegistry {
	registry := NewContentGeneratorRegistry()
	registry.Register(&fakeGenerator{
		channel: entity.ChannelEmail,
		forReply: func(event *entity.LeadRepliedEvent, previous []entity.Message) (entity.ChannelMessage, error) {
			subject := "Re: hello"
			if len(previous) > 0 {
				subject = "Re: " + previous[0].ChannelMessage.(entity.EmailMessage).Subject
			}
			return entity.EmailMessage{
				To:      event.Payload.Lead.Email,
				Subject: subject,
				Body:    "Thanks for getting back to us!",
			}, nil
		},
	})
	return registry
}

// Resposta do lead por email gera uma única resposta no mesmo canal e um
// único comando send-message
func TestOnLeadRepliedGeneratesSingleReplyOnSameChannel(t *testing.T) {
	ctx := context.Background()

	outreachEmail := entity.NewMessage(entity.EmailMessage{
		To:      "john@x.com",
		Subject: "Welcome, John Doe!",
		Body:    "Hi John Doe",
	})
	leadMessage := entity.NewMessage(entity.EmailMessage{
		To:      "sales@salespad.io",
		Subject: "Re: Welcome, John Doe!",
		Body:    "Tell me more",
	})

	repo := &fakeMessageRepo{previous: []entity.Message{*outreachEmail}}
	mockBus := new(MockCommandBus)
	events := NewEventDispatcher()

	handler := NewReplyOnLeadRepliedHandler(replyRegistry(), repo, mockBus, events)

	var command *entity.Command
	mockBus.On("Send", ctx, mock.Anything).Run(func(args mock.Arguments) {
		command = args.Get(1).(*entity.Command)
	}).Return(nil)

	event := leadRepliedEvent(leadMessage)
	err := handler.Handle(ctx, event)

	assert.NoError(t, err)
	mockBus.AssertNumberOfCalls(t, "Send", 1)

	// A resposta persistida referencia a mensagem do lead e usa o histórico
	assert.NotNil(t, repo.replyInput)
	assert.Equal(t, "lead-1", repo.replyInput.LeadID)
	assert.Equal(t, leadMessage.ID, repo.replyInput.ReplyToMessageID)
	assert.Equal(t, entity.ChannelEmail, repo.replyInput.Message.Channel)

	generated := repo.replyInput.Message.ChannelMessage.(entity.EmailMessage)
	assert.Equal(t, "Re: Welcome, John Doe!", generated.Subject)

	// Cadeia de correlação: request -> reply event -> evento derivado
	assert.Equal(t, "r1", command.CorrelationIDs[entity.CorrelationRequestID])
	assert.Equal(t, "reply-e1", command.CorrelationIDs[entity.CorrelationTriggeredBy])
	assert.Equal(t, "derived-2", command.CorrelationIDs[entity.CorrelationEventID])
	assert.Equal(t, "lead-1", command.CorrelationIDs[entity.CorrelationLeadID])

	payload, err := entity.DecodeSendMessagePayload(command.Payload)
	assert.NoError(t, err)
	assert.Equal(t, entity.ChannelEmail, payload.Channel)
	assert.Equal(t, repo.replyInput.Message.ID, payload.ID)
}

// O histórico visto pelo generator é filtrado pelo canal da resposta
func TestOnLeadRepliedFiltersHistoryByChannel(t *testing.T) {
	ctx := context.Background()

	outreachEmail := entity.NewMessage(entity.EmailMessage{
		To:      "john@x.com",
		Subject: "Welcome, John Doe!",
	})
	outreachWhatsApp := entity.NewMessage(entity.WhatsAppMessage{
		To:   "+1234567890",
		Text: "Hi John Doe!",
	})

	repo := &fakeMessageRepo{previous: []entity.Message{*outreachWhatsApp, *outreachEmail}}
	mockBus := new(MockCommandBus)
	events := NewEventDispatcher()

	var seenHistory []entity.Message
	registry := NewContentGeneratorRegistry()
	registry.Register(&fakeGenerator{
		channel: entity.ChannelEmail,
		forReply: func(event *entity.LeadRepliedEvent, previous []entity.Message) (entity.ChannelMessage, error) {
			seenHistory = previous
			return entity.EmailMessage{To: event.Payload.Lead.Email, Subject: "Re:"}, nil
		},
	})

	handler := NewReplyOnLeadRepliedHandler(registry, repo, mockBus, events)
	mockBus.On("Send", ctx, mock.Anything).Return(nil)

	leadMessage := entity.NewMessage(entity.EmailMessage{To: "sales@salespad.io", Subject: "Re:"})
	err := handler.Handle(ctx, leadRepliedEvent(leadMessage))

	assert.NoError(t, err)
	assert.Len(t, seenHistory, 1)
	assert.Equal(t, entity.ChannelEmail, seenHistory[0].Channel)
	assert.Equal(t, outreachEmail.ID, seenHistory[0].ID)
}

// Canal sem generator registrado é erro de domínio, nada é persistido
func TestOnLeadRepliedMissingGeneratorFails(t *testing.T) {
	ctx := context.Background()

	repo := &fakeMessageRepo{}
	mockBus := new(MockCommandBus)
	events := NewEventDispatcher()

	handler := NewReplyOnLeadRepliedHandler(NewContentGeneratorRegistry(), repo, mockBus, events)

	leadMessage := entity.NewMessage(entity.WhatsAppMessage{To: "+1234567890", Text: "hey"})
	err := handler.Handle(ctx, leadRepliedEvent(leadMessage))

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeChannelNotRegistered, err.(*DomainError).Code)
	assert.Nil(t, repo.replyInput)
	mockBus.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestOnLeadRepliedHistoryLookupFailureSurfaces(t *testing.T) {
	ctx := context.Background()

	repo := &fakeMessageRepo{getErr: errors.New("connection reset")}
	mockBus := new(MockCommandBus)
	events := NewEventDispatcher()

	handler := NewReplyOnLeadRepliedHandler(replyRegistry(), repo, mockBus, events)

	leadMessage := entity.NewMessage(entity.EmailMessage{To: "sales@salespad.io"})
	err := handler.Handle(ctx, leadRepliedEvent(leadMessage))

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	assert.Equal(t, CodeDatabaseError, err.(*TechnicalError).Code)
}

func TestOnLeadRepliedGenerationFailureSkipsPersistence(t *testing.T) {
	ctx := context.Background()

	repo := &fakeMessageRepo{}
	mockBus := new(MockCommandBus)
	events := NewEventDispatcher()

	registry := NewContentGeneratorRegistry()
	registry.Register(&fakeGenerator{
		channel: entity.ChannelEmail,
		forReply: func(event *entity.LeadRepliedEvent, previous []entity.Message) (entity.ChannelMessage, error) {
			return nil, errors.New("content service unavailable")
		},
	})

	handler := NewReplyOnLeadRepliedHandler(registry, repo, mockBus, events)

	leadMessage := entity.NewMessage(entity.EmailMessage{To: "sales@salespad.io"})
	err := handler.Handle(ctx, leadRepliedEvent(leadMessage))

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	assert.Equal(t, CodeGenerationFailed, err.(*TechnicalError).Code)
	assert.Nil(t, repo.replyInput)
	mockBus.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
