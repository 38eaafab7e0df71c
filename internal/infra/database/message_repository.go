package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/salespad-outreach/internal/entity"
)

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

// SaveMessagesSent persiste o lote inteiro e o evento derivado
// message_sent em uma única transação: ou entra tudo, ou nada.
// Lote vazio não abre transação, só devolve o evento derivado.
func (r *MessageRepository) SaveMessagesSent(ctx context.Context, input entity.SaveMessagesSentInput) ([]entity.SavedMessage, *entity.LeadMessagesSentEvent, error) {
	if len(input.Messages) == 0 {
		event := &entity.LeadMessagesSentEvent{
			ID:             uuid.New().String(),
			LeadID:         input.LeadID,
			CorrelationIDs: input.CorrelationIDs,
			Payload:        entity.LeadMessagesSentPayload{LeadID: input.LeadID, MessageIDs: []string{}},
			CreatedAt:      time.Now(),
		}
		return []entity.SavedMessage{}, event, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	savedMessages := make([]entity.SavedMessage, 0, len(input.Messages))
	messageIDs := make([]string, 0, len(input.Messages))

	for i := range input.Messages {
		message := input.Messages[i]
		if err := insertMessage(ctx, tx, &message, input.LeadID); err != nil {
			return nil, nil, err
		}
		messageIDs = append(messageIDs, message.ID)
		savedMessages = append(savedMessages, entity.SavedMessage{
			ID:      message.ID,
			LeadID:  input.LeadID,
			Message: message,
		})
	}

	payload := entity.LeadMessagesSentPayload{
		LeadID:     input.LeadID,
		MessageIDs: messageIDs,
	}

	eventID := uuid.New().String()
	eventCreatedAt, err := insertLeadEvent(ctx, tx, eventID, entity.EventTypeMessageSent, input.LeadID, input.CorrelationIDs, payload)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	event := &entity.LeadMessagesSentEvent{
		ID:             eventID,
		LeadID:         input.LeadID,
		CorrelationIDs: input.CorrelationIDs,
		Payload:        payload,
		CreatedAt:      eventCreatedAt,
	}
	return savedMessages, event, nil
}

// SaveMessageSentToReply persiste a resposta gerada e o evento derivado
// na mesma transação
func (r *MessageRepository) SaveMessageSentToReply(ctx context.Context, input entity.SaveMessageSentToReplyInput) (*entity.SavedMessage, *entity.MessageSentToReplyEvent, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	if err := insertMessage(ctx, tx, input.Message, input.LeadID); err != nil {
		return nil, nil, err
	}

	payload := entity.MessageSentToReplyPayload{
		LeadID:           input.LeadID,
		MessageID:        input.Message.ID,
		ReplyToMessageID: input.ReplyToMessageID,
	}

	eventID := uuid.New().String()
	eventCreatedAt, err := insertLeadEvent(ctx, tx, eventID, entity.EventTypeAIReplySent, input.LeadID, input.CorrelationIDs, payload)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	savedMessage := &entity.SavedMessage{
		ID:      input.Message.ID,
		LeadID:  input.LeadID,
		Message: *input.Message,
	}
	event := &entity.MessageSentToReplyEvent{
		ID:             eventID,
		LeadID:         input.LeadID,
		CorrelationIDs: input.CorrelationIDs,
		Payload:        payload,
		CreatedAt:      eventCreatedAt,
	}
	return savedMessage, event, nil
}

func (r *MessageRepository) GetMessagesForLead(ctx context.Context, leadID string) ([]entity.Message, error) {
	query := `
		SELECT id, channel, channel_message, created_at
		FROM messages
		WHERE lead_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []entity.Message{}
	for rows.Next() {
		var (
			id             string
			channel        string
			channelMessage []byte
			createdAt      time.Time
		)
		if err := rows.Scan(&id, &channel, &channelMessage, &createdAt); err != nil {
			return nil, err
		}

		cm, err := entity.UnmarshalChannelMessage(entity.Channel(channel), json.RawMessage(channelMessage))
		if err != nil {
			return nil, err
		}

		messages = append(messages, entity.Message{
			ID:             id,
			Channel:        entity.Channel(channel),
			ChannelMessage: cm,
			CreatedAt:      createdAt,
		})
	}
	return messages, rows.Err()
}
