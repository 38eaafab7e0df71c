package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelLinkedIn Channel = "linkedin"
	ChannelVoice    Channel = "voice"
	ChannelAds      Channel = "ads"
)

// ChannelMessage é a união discriminada pelo canal. Cada formato concreto
// sabe a qual canal pertence; o shape no banco/fila é o struct puro.
type ChannelMessage interface {
	MessageChannel() Channel
}

type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (EmailMessage) MessageChannel() Channel { return ChannelEmail }

type WhatsAppMessage struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

func (WhatsAppMessage) MessageChannel() Channel { return ChannelWhatsApp }

type LinkedInMessage struct {
	ProfileURL string `json:"profileUrl"`
	Text       string `json:"text"`
}

func (LinkedInMessage) MessageChannel() Channel { return ChannelLinkedIn }

type VoiceMessage struct {
	To     string `json:"to"`
	Script string `json:"script"`
}

func (VoiceMessage) MessageChannel() Channel { return ChannelVoice }

type AdsMessage struct {
	TargetAudience string `json:"targetAudience"`
	Headline       string `json:"headline"`
	Description    string `json:"description"`
}

func (AdsMessage) MessageChannel() Channel { return ChannelAds }

// UnmarshalChannelMessage decodifica o JSON no formato concreto do canal
func UnmarshalChannelMessage(channel Channel, data []byte) (ChannelMessage, error) {
	switch channel {
	case ChannelEmail:
		var m EmailMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case ChannelWhatsApp:
		var m WhatsAppMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case ChannelLinkedIn:
		var m LinkedInMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case ChannelVoice:
		var m VoiceMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case ChannelAds:
		var m AdsMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("canal desconhecido: %s", channel)
	}
}

// Message é imutável depois de persistida. O canal é sempre derivado do
// conteúdo, então é impossível montar uma Message com canal trocado.
type Message struct {
	ID             string         `json:"id"`
	Channel        Channel        `json:"channel"`
	ChannelMessage ChannelMessage `json:"channelMessage"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func NewMessage(channelMessage ChannelMessage) *Message {
	return &Message{
		ID:             uuid.New().String(),
		Channel:        channelMessage.MessageChannel(),
		ChannelMessage: channelMessage,
		CreatedAt:      time.Now(),
	}
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID             string          `json:"id"`
		Channel        Channel         `json:"channel"`
		ChannelMessage json.RawMessage `json:"channelMessage"`
		CreatedAt      time.Time       `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	cm, err := UnmarshalChannelMessage(raw.Channel, raw.ChannelMessage)
	if err != nil {
		return err
	}

	m.ID = raw.ID
	m.Channel = raw.Channel
	m.ChannelMessage = cm
	m.CreatedAt = raw.CreatedAt
	return nil
}

// SavedMessage liga uma mensagem persistida ao lead dono dela
type SavedMessage struct {
	ID      string  `json:"id"`
	LeadID  string  `json:"leadId"`
	Message Message `json:"message"`
}
