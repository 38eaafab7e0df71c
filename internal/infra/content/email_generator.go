// Package content traz as estratégias de geração de conteúdo por canal.
// Os generators baseados em template são determinísticos: mesmo evento,
// mesmo conteúdo.
package content

import (
	"context"
	"fmt"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

type EmailGenerator struct{}

func NewEmailGenerator() *EmailGenerator {
	return &EmailGenerator{}
}

func (g *EmailGenerator) Channel() entity.Channel {
	return entity.ChannelEmail
}

func (g *EmailGenerator) GenerateForNewLead(ctx context.Context, event *entity.LeadAddedEvent) (entity.ChannelMessage, error) {
	leadName := event.Payload.Name

	return entity.EmailMessage{
		To:      event.Payload.Email,
		Subject: fmt.Sprintf("Welcome, %s!", leadName),
		Body: fmt.Sprintf(`Hi %s,

Thanks for your interest! We would love to learn more about your needs.

Looking forward to connecting with you soon.

Best regards,
The SalesPad Team`, leadName),
	}, nil
}

func (g *EmailGenerator) GenerateForReply(ctx context.Context, event *entity.LeadRepliedEvent, previousMessages []entity.Message) (entity.ChannelMessage, error) {
	leadName := event.Payload.Lead.Name

	subject := fmt.Sprintf("Re: Welcome, %s!", leadName)
	if len(previousMessages) > 0 {
		if first, ok := previousMessages[0].ChannelMessage.(entity.EmailMessage); ok {
			subject = "Re: " + first.Subject
		}
	}

	return entity.EmailMessage{
		To:      event.Payload.Lead.Email,
		Subject: subject,
		Body: fmt.Sprintf(`Hi %s,

Thanks for getting back to us! One of our specialists will follow up with the details shortly.

Best regards,
The SalesPad Team`, leadName),
	}, nil
}
