package mail

import (
	"context"
	"fmt"
	"log"

	"github.com/xavierca1/salespad-outreach/internal/entity"
	"github.com/xavierca1/salespad-outreach/internal/infra/integration/whatsapp"
)

type WhatsAppSender struct {
	client *whatsapp.Client
}

func NewWhatsAppSender(client *whatsapp.Client) *WhatsAppSender {
	return &WhatsAppSender{
		client: client,
	}
}

func (s *WhatsAppSender) Channel() entity.Channel {
	return entity.ChannelWhatsApp
}

func (s *WhatsAppSender) Send(ctx context.Context, channelMessage entity.ChannelMessage) error {
	msg, ok := channelMessage.(entity.WhatsAppMessage)
	if !ok {
		return fmt.Errorf("whatsapp sender recebeu mensagem de outro canal: %s", channelMessage.MessageChannel())
	}

	if msg.To == "" {
		log.Printf("⚠️ WhatsApp: mensagem sem destinatário, nada a enviar")
		return nil
	}

	return s.client.SendText(ctx, whatsapp.SendTextInput{
		PhoneNumber: msg.To,
		Text:        msg.Text,
	})
}
