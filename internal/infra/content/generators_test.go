package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

func newLeadEvent() *entity.LeadAddedEvent {
	return &entity.LeadAddedEvent{
		ID:     "e1",
		LeadID: "lead-1",
		Payload: entity.LeadAddedPayload{
			LeadID: "lead-1",
			Name:   "John Doe",
			Email:  "john@x.com",
			Phone:  "+1234567890",
			Status: entity.LeadStatusNew,
		},
		CreatedAt: time.Now(),
	}
}

func repliedEvent(leadMessage entity.ChannelMessage) *entity.LeadRepliedEvent {
	return &entity.LeadRepliedEvent{
		ID:     "reply-e1",
		LeadID: "lead-1",
		Payload: entity.LeadRepliedPayload{
			Lead: entity.Lead{
				ID:    "lead-1",
				Name:  "John Doe",
				Email: "john@x.com",
				Phone: "+1234567890",
			},
			LeadMessage: *entity.NewMessage(leadMessage),
		},
	}
}

func TestEmailGeneratorNewLead(t *testing.T) {
	generator := NewEmailGenerator()

	cm, err := generator.GenerateForNewLead(context.Background(), newLeadEvent())

	assert.NoError(t, err)
	email := cm.(entity.EmailMessage)
	assert.Equal(t, "john@x.com", email.To)
	assert.Equal(t, "Welcome, John Doe!", email.Subject)
	assert.Contains(t, email.Body, "Hi John Doe")
	assert.Contains(t, email.Body, "The SalesPad Team")
}

// Mesmo evento, mesmo conteúdo: generators de template são determinísticos
func TestEmailGeneratorIsDeterministic(t *testing.T) {
	generator := NewEmailGenerator()
	event := newLeadEvent()

	first, err1 := generator.GenerateForNewLead(context.Background(), event)
	second, err2 := generator.GenerateForNewLead(context.Background(), event)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, first, second)
}

// A resposta reaproveita o assunto do primeiro email enviado
func TestEmailGeneratorReplyThreadsSubject(t *testing.T) {
	generator := NewEmailGenerator()

	previous := []entity.Message{
		*entity.NewMessage(entity.EmailMessage{To: "john@x.com", Subject: "Welcome, John Doe!"}),
	}

	cm, err := generator.GenerateForReply(
		context.Background(),
		repliedEvent(entity.EmailMessage{To: "sales@salespad.io", Body: "Tell me more"}),
		previous,
	)

	assert.NoError(t, err)
	email := cm.(entity.EmailMessage)
	assert.Equal(t, "Re: Welcome, John Doe!", email.Subject)
	assert.Equal(t, "john@x.com", email.To)
}

func TestEmailGeneratorReplyWithoutHistory(t *testing.T) {
	generator := NewEmailGenerator()

	cm, err := generator.GenerateForReply(
		context.Background(),
		repliedEvent(entity.EmailMessage{To: "sales@salespad.io", Body: "Tell me more"}),
		nil,
	)

	assert.NoError(t, err)
	assert.Equal(t, "Re: Welcome, John Doe!", cm.(entity.EmailMessage).Subject)
}

func TestWhatsAppGeneratorNewLead(t *testing.T) {
	generator := NewWhatsAppGenerator()

	cm, err := generator.GenerateForNewLead(context.Background(), newLeadEvent())

	assert.NoError(t, err)
	wa := cm.(entity.WhatsAppMessage)
	assert.Equal(t, "+1234567890", wa.To)
	assert.Contains(t, wa.Text, "John Doe")
}

// Cada generator declara o canal do conteúdo que produz
func TestGeneratorsProduceContentOfOwnChannel(t *testing.T) {
	event := newLeadEvent()

	generators := []interface {
		Channel() entity.Channel
		GenerateForNewLead(ctx context.Context, event *entity.LeadAddedEvent) (entity.ChannelMessage, error)
	}{
		NewEmailGenerator(),
		NewWhatsAppGenerator(),
		NewLinkedInGenerator(),
		NewVoiceGenerator(),
		NewAdsGenerator(),
	}

	for _, g := range generators {
		cm, err := g.GenerateForNewLead(context.Background(), event)
		assert.NoError(t, err)
		assert.Equal(t, g.Channel(), cm.MessageChannel())
	}
}
