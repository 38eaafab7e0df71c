package entity

import (
	"encoding/json"
	"time"
)

// Tipos persistidos na coluna type de lead_events
const (
	EventTypeLeadAdded     = "lead_added"
	EventTypeMessageSent   = "message_sent"
	EventTypeReplyReceived = "reply_received"
	EventTypeAIReplySent   = "ai_reply_sent"
	EventTypeStatusChanged = "status_changed"
)

// Nomes usados no dispatcher de eventos em processo
const (
	LeadAddedEventName          = "lead.added"
	LeadRepliedEventName        = "lead.replied"
	LeadMessagesSentEventName   = "lead.messages.sent"
	MessageSentToReplyEventName = "message.sent.to.lead.reply"
)

type LeadAddedPayload struct {
	LeadID string `json:"leadId"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Status string `json:"status"`
}

// LeadAddedEvent dispara o outreach inicial multi-canal
type LeadAddedEvent struct {
	ID             string           `json:"id"`
	LeadID         string           `json:"leadId"`
	CorrelationIDs CorrelationIDs   `json:"correlationIds"`
	Payload        LeadAddedPayload `json:"payload"`
	CreatedAt      time.Time        `json:"createdAt"`
}

type LeadRepliedPayload struct {
	Lead        Lead    `json:"lead"`
	LeadMessage Message `json:"leadMessage"`
}

// LeadRepliedEvent carrega a mensagem que o lead mandou e em qual canal
type LeadRepliedEvent struct {
	ID             string             `json:"id"`
	LeadID         string             `json:"leadId"`
	CorrelationIDs CorrelationIDs     `json:"correlationIds"`
	Payload        LeadRepliedPayload `json:"payload"`
	CreatedAt      time.Time          `json:"createdAt"`
}

type LeadMessagesSentPayload struct {
	LeadID     string   `json:"leadId"`
	MessageIDs []string `json:"messageIds"`
}

// LeadMessagesSentEvent é derivado pelo repositório junto com o save atômico
type LeadMessagesSentEvent struct {
	ID             string                  `json:"id"`
	LeadID         string                  `json:"leadId"`
	CorrelationIDs CorrelationIDs          `json:"correlationIds"`
	Payload        LeadMessagesSentPayload `json:"payload"`
	CreatedAt      time.Time               `json:"createdAt"`
}

type MessageSentToReplyPayload struct {
	LeadID           string `json:"leadId"`
	MessageID        string `json:"messageId"`
	ReplyToMessageID string `json:"replyToMessageId"`
}

type MessageSentToReplyEvent struct {
	ID             string                    `json:"id"`
	LeadID         string                    `json:"leadId"`
	CorrelationIDs CorrelationIDs            `json:"correlationIds"`
	Payload        MessageSentToReplyPayload `json:"payload"`
	CreatedAt      time.Time                 `json:"createdAt"`
}

// AuditEvent é a projeção genérica de um evento persistido em lead_events,
// usada na trilha de auditoria do lead
type AuditEvent struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	LeadID         string          `json:"leadId"`
	CorrelationIDs CorrelationIDs  `json:"correlationIds"`
	Payload        json.RawMessage `json:"payload"`
	CreatedAt      time.Time       `json:"createdAt"`
}
