package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusReplied   = "replied"
	LeadStatusConverted = "converted"
	LeadStatusDead      = "dead"
)

type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"` // new, contacted, replied, converted, dead
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewLead(name, email, phone string) *Lead {
	return &Lead{
		ID:     uuid.New().String(),
		Name:   name,
		Email:  email,
		Phone:  phone,
		Status: LeadStatusNew,
	}
}

type AddLeadInput struct {
	Lead           *Lead
	CorrelationIDs CorrelationIDs
}

type ReplyToLeadInput struct {
	LeadID         string
	ReplyMessage   *Message
	CorrelationIDs CorrelationIDs
}

type LeadRepositoryInterface interface {
	// AddLead persiste o lead e o evento lead.added na mesma transação
	AddLead(ctx context.Context, input AddLeadInput) (*Lead, *LeadAddedEvent, error)

	// ReplyToLead grava a resposta do lead, faz a transição new -> replied
	// e persiste o evento reply_received, tudo na mesma transação
	ReplyToLead(ctx context.Context, input ReplyToLeadInput) (*Lead, *LeadRepliedEvent, error)

	FindByID(ctx context.Context, id string) (*Lead, error)

	GetEventsForLead(ctx context.Context, leadID string) ([]AuditEvent, error)
}

type MessageRepositoryInterface interface {
	SaveMessagesSent(ctx context.Context, input SaveMessagesSentInput) ([]SavedMessage, *LeadMessagesSentEvent, error)
	SaveMessageSentToReply(ctx context.Context, input SaveMessageSentToReplyInput) (*SavedMessage, *MessageSentToReplyEvent, error)

	// GetMessagesForLead retorna as mensagens em ordem cronológica
	GetMessagesForLead(ctx context.Context, leadID string) ([]Message, error)
}

type SaveMessagesSentInput struct {
	Messages       []Message
	LeadID         string
	CorrelationIDs CorrelationIDs
}

type SaveMessageSentToReplyInput struct {
	Message          *Message
	LeadID           string
	ReplyToMessageID string
	CorrelationIDs   CorrelationIDs
}
