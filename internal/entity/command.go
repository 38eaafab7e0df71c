package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const SendMessageCommandName = "send-message"

// Command é o envelope serializável enfileirado para execução assíncrona.
// O payload já vai serializado para o envelope sobreviver ao round-trip
// pela fila sem perder o shape.
type Command struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CorrelationIDs CorrelationIDs  `json:"correlationIds"`
	Payload        json.RawMessage `json:"payload"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type SendMessagePayload struct {
	ID             string         `json:"id"`
	Channel        Channel        `json:"channel"`
	ChannelMessage ChannelMessage `json:"channelMessage"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func NewSendMessageCommand(correlationIDs CorrelationIDs, message Message) (*Command, error) {
	payload, err := json.Marshal(SendMessagePayload{
		ID:             message.ID,
		Channel:        message.Channel,
		ChannelMessage: message.ChannelMessage,
		CreatedAt:      message.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	return &Command{
		ID:             uuid.New().String(),
		Name:           SendMessageCommandName,
		CorrelationIDs: correlationIDs,
		Payload:        payload,
		CreatedAt:      time.Now(),
	}, nil
}

// DecodeSendMessagePayload reconstrói o payload do lado do worker
func DecodeSendMessagePayload(data []byte) (*SendMessagePayload, error) {
	var raw struct {
		ID             string          `json:"id"`
		Channel        Channel         `json:"channel"`
		ChannelMessage json.RawMessage `json:"channelMessage"`
		CreatedAt      time.Time       `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	cm, err := UnmarshalChannelMessage(raw.Channel, raw.ChannelMessage)
	if err != nil {
		return nil, err
	}

	return &SendMessagePayload{
		ID:             raw.ID,
		Channel:        raw.Channel,
		ChannelMessage: cm,
		CreatedAt:      raw.CreatedAt,
	}, nil
}
