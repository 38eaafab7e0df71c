package content

import (
	"context"
	"fmt"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

type WhatsAppGenerator struct{}

func NewWhatsAppGenerator() *WhatsAppGenerator {
	return &WhatsAppGenerator{}
}

func (g *WhatsAppGenerator) Channel() entity.Channel {
	return entity.ChannelWhatsApp
}

func (g *WhatsAppGenerator) GenerateForNewLead(ctx context.Context, event *entity.LeadAddedEvent) (entity.ChannelMessage, error) {
	leadName := event.Payload.Name

	return entity.WhatsAppMessage{
		To:   event.Payload.Phone,
		Text: fmt.Sprintf("Hi %s! Thanks for your interest. We'd love to learn more about your needs. Looking forward to connecting with you soon! - The SalesPad Team", leadName),
	}, nil
}

func (g *WhatsAppGenerator) GenerateForReply(ctx context.Context, event *entity.LeadRepliedEvent, previousMessages []entity.Message) (entity.ChannelMessage, error) {
	leadName := event.Payload.Lead.Name

	return entity.WhatsAppMessage{
		To:   event.Payload.Lead.Phone,
		Text: fmt.Sprintf("Thanks for getting back to us, %s! One of our specialists will follow up with the details shortly. - The SalesPad Team", leadName),
	}, nil
}
