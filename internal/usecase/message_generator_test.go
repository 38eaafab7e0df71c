package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

func leadAddedEvent(name, email, phone string) *entity.LeadAddedEvent {
	return &entity.LeadAddedEvent{
		ID:             "e1",
		LeadID:         "lead-1",
		CorrelationIDs: entity.CorrelationIDs{"requestId": "r1"},
		Payload: entity.LeadAddedPayload{
			LeadID: "lead-1",
			Name:   name,
			Email:  email,
			Phone:  phone,
			Status: entity.LeadStatusNew,
		},
		CreatedAt: time.Now(),
	}
}

func templateRegistry() *ContentGeneratorRegistry {
	registry := NewContentGeneratorRegistry()
	registry.Register(&fakeGenerator{
		channel: entity.ChannelEmail,
		newLead: func(event *entity.LeadAddedEvent) (entity.ChannelMessage, error) {
			return entity.EmailMessage{
				To:      event.Payload.Email,
				Subject: "Welcome, " + event.Payload.Name + "!",
				Body:    "Hi " + event.Payload.Name,
			}, nil
		},
	})
	registry.Register(&fakeGenerator{
		channel: entity.ChannelWhatsApp,
		newLead: func(event *entity.LeadAddedEvent) (entity.ChannelMessage, error) {
			return entity.WhatsAppMessage{
				To:   event.Payload.Phone,
				Text: "Hi " + event.Payload.Name + "!",
			}, nil
		},
	})
	return registry
}

// Cenário: lead só com email gera uma mensagem de email com o nome no assunto
func TestGenerateEmailOnlyLead(t *testing.T) {
	generator := NewMessageGenerator(NewDefaultChannelResolver(), templateRegistry())

	messages, err := generator.Generate(context.Background(), leadAddedEvent("John Doe", "john@x.com", ""))

	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Equal(t, entity.ChannelEmail, messages[0].Channel)

	email := messages[0].ChannelMessage.(entity.EmailMessage)
	assert.Equal(t, "john@x.com", email.To)
	assert.Contains(t, email.Subject, "John Doe")
}

// Cenário: lead só com telefone gera uma mensagem de whatsapp
func TestGeneratePhoneOnlyLead(t *testing.T) {
	generator := NewMessageGenerator(NewDefaultChannelResolver(), templateRegistry())

	messages, err := generator.Generate(context.Background(), leadAddedEvent("Jane Smith", "", "+1234567890"))

	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Equal(t, entity.ChannelWhatsApp, messages[0].Channel)

	wa := messages[0].ChannelMessage.(entity.WhatsAppMessage)
	assert.Equal(t, "+1234567890", wa.To)
}

// Cenário: os dois contatos geram duas mensagens com ids distintos
func TestGenerateBothChannels(t *testing.T) {
	generator := NewMessageGenerator(NewDefaultChannelResolver(), templateRegistry())

	messages, err := generator.Generate(context.Background(), leadAddedEvent("John Doe", "john@x.com", "+1234567890"))

	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, entity.ChannelEmail, messages[0].Channel)
	assert.Equal(t, entity.ChannelWhatsApp, messages[1].Channel)
	assert.NotEqual(t, messages[0].ID, messages[1].ID)
	assert.NotEmpty(t, messages[0].ID)
}

func TestGenerateNoContactInfoYieldsEmptyBatch(t *testing.T) {
	generator := NewMessageGenerator(NewDefaultChannelResolver(), templateRegistry())

	messages, err := generator.Generate(context.Background(), leadAddedEvent("John Doe", "", ""))

	assert.NoError(t, err)
	assert.Empty(t, messages)
}

// Canal resolvido sem generator registrado derruba o lote inteiro
func TestGenerateMissingGeneratorFailsBatch(t *testing.T) {
	registry := NewContentGeneratorRegistry()
	registry.Register(&fakeGenerator{
		channel: entity.ChannelEmail,
		newLead: func(event *entity.LeadAddedEvent) (entity.ChannelMessage, error) {
			return entity.EmailMessage{To: event.Payload.Email}, nil
		},
	})

	generator := NewMessageGenerator(NewDefaultChannelResolver(), registry)

	messages, err := generator.Generate(context.Background(), leadAddedEvent("John Doe", "john@x.com", "+1234567890"))

	assert.Error(t, err)
	assert.Nil(t, messages)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeChannelNotRegistered, err.(*DomainError).Code)
}

// Falha de geração em um canal aborta o lote (sem sucesso parcial)
func TestGenerateFailureAbortsWholeBatch(t *testing.T) {
	registry := templateRegistry()
	registry.Register(&fakeGenerator{
		channel: entity.ChannelWhatsApp,
		newLead: func(event *entity.LeadAddedEvent) (entity.ChannelMessage, error) {
			return nil, errors.New("content service unavailable")
		},
	})

	generator := NewMessageGenerator(NewDefaultChannelResolver(), registry)

	messages, err := generator.Generate(context.Background(), leadAddedEvent("John Doe", "john@x.com", "+1234567890"))

	assert.Error(t, err)
	assert.Nil(t, messages)
	assert.True(t, IsTechnicalError(err))
}
