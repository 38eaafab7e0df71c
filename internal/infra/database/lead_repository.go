package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/salespad-outreach/internal/entity"
	"github.com/xavierca1/salespad-outreach/internal/usecase"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// AddLead insere o lead e o evento lead_added na mesma transação, para o
// registro de auditoria nunca existir sem o lead (e vice-versa)
func (r *LeadRepository) AddLead(ctx context.Context, input entity.AddLeadInput) (*entity.Lead, *entity.LeadAddedEvent, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	lead := input.Lead

	query := `
		INSERT INTO leads (id, name, email, phone, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, query,
		lead.ID, lead.Name, nullString(lead.Email), nullString(lead.Phone), lead.Status,
	).Scan(&lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao inserir lead: %w", err)
	}

	payload := entity.LeadAddedPayload{
		LeadID: lead.ID,
		Name:   lead.Name,
		Email:  lead.Email,
		Phone:  lead.Phone,
		Status: lead.Status,
	}

	eventID := uuid.New().String()
	eventCreatedAt, err := insertLeadEvent(ctx, tx, eventID, entity.EventTypeLeadAdded, lead.ID, input.CorrelationIDs, payload)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	event := &entity.LeadAddedEvent{
		ID:             eventID,
		LeadID:         lead.ID,
		CorrelationIDs: input.CorrelationIDs,
		Payload:        payload,
		CreatedAt:      eventCreatedAt,
	}
	return lead, event, nil
}

// ReplyToLead grava a mensagem recebida do lead, faz a transição de
// status para replied e persiste o evento reply_received, tudo atômico
func (r *LeadRepository) ReplyToLead(ctx context.Context, input entity.ReplyToLeadInput) (*entity.Lead, *entity.LeadRepliedEvent, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	lead, err := findLeadByID(ctx, tx, input.LeadID)
	if err != nil {
		return nil, nil, err
	}

	updateQuery := `
		UPDATE leads SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at
	`
	if err := tx.QueryRowContext(ctx, updateQuery, entity.LeadStatusReplied, lead.ID).Scan(&lead.UpdatedAt); err != nil {
		return nil, nil, fmt.Errorf("falha ao atualizar status do lead: %w", err)
	}
	lead.Status = entity.LeadStatusReplied

	if err := insertMessage(ctx, tx, input.ReplyMessage, lead.ID); err != nil {
		return nil, nil, err
	}

	payload := entity.LeadRepliedPayload{
		Lead:        *lead,
		LeadMessage: *input.ReplyMessage,
	}

	eventID := uuid.New().String()
	eventCreatedAt, err := insertLeadEvent(ctx, tx, eventID, entity.EventTypeReplyReceived, lead.ID, input.CorrelationIDs, payload)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	event := &entity.LeadRepliedEvent{
		ID:             eventID,
		LeadID:         lead.ID,
		CorrelationIDs: input.CorrelationIDs,
		Payload:        payload,
		CreatedAt:      eventCreatedAt,
	}
	return lead, event, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	return findLeadByID(ctx, r.DB, id)
}

func (r *LeadRepository) GetEventsForLead(ctx context.Context, leadID string) ([]entity.AuditEvent, error) {
	query := `
		SELECT id, type, lead_id, correlation_ids, payload, created_at
		FROM lead_events
		WHERE lead_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []entity.AuditEvent{}
	for rows.Next() {
		var ev entity.AuditEvent
		var correlationIDs []byte
		var payload []byte

		if err := rows.Scan(&ev.ID, &ev.Type, &ev.LeadID, &correlationIDs, &payload, &ev.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(correlationIDs, &ev.CorrelationIDs); err != nil {
			return nil, fmt.Errorf("correlation_ids corrompido no evento %s: %w", ev.ID, err)
		}
		ev.Payload = json.RawMessage(payload)
		events = append(events, ev)
	}
	return events, rows.Err()
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func findLeadByID(ctx context.Context, q queryRower, id string) (*entity.Lead, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), status, created_at, updated_at
		FROM leads
		WHERE id = $1
	`
	lead := &entity.Lead{}
	err := q.QueryRowContext(ctx, query, id).Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.Status, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &usecase.DomainError{
			Code:    usecase.CodeLeadNotFound,
			Message: "lead not found: " + id,
		}
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func insertLeadEvent(ctx context.Context, tx *sql.Tx, eventID, eventType, leadID string, correlationIDs entity.CorrelationIDs, payload any) (time.Time, error) {
	correlationJSON, err := json.Marshal(correlationIDs)
	if err != nil {
		return time.Time{}, err
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return time.Time{}, err
	}

	query := `
		INSERT INTO lead_events (id, type, lead_id, correlation_ids, payload)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	var createdAt time.Time
	err = tx.QueryRowContext(ctx, query, eventID, eventType, leadID, correlationJSON, payloadJSON).Scan(&createdAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("falha ao inserir lead_event: %w", err)
	}
	return createdAt, nil
}

func insertMessage(ctx context.Context, tx *sql.Tx, message *entity.Message, leadID string) error {
	channelMessageJSON, err := json.Marshal(message.ChannelMessage)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO messages (id, lead_id, channel, channel_message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.ExecContext(ctx, query, message.ID, leadID, string(message.Channel), channelMessageJSON, message.CreatedAt); err != nil {
		return fmt.Errorf("falha ao inserir mensagem: %w", err)
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
