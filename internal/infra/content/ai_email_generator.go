package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/xavierca1/salespad-outreach/internal/entity"
	"github.com/xavierca1/salespad-outreach/internal/infra/integration/openai"
)

const emailSystemPrompt = "You write short, warm sales outreach emails for the SalesPad team. " +
	"Reply with the email body only, no subject line, no markdown."

// AIEmailGenerator delega o corpo do email para um serviço de conteúdo
// compatível com a API da OpenAI. A geração pode falhar de forma
// independente por canal (rede, quota); o lote é quem decide abortar.
type AIEmailGenerator struct {
	client *openai.Client
}

func NewAIEmailGenerator(client *openai.Client) *AIEmailGenerator {
	return &AIEmailGenerator{client: client}
}

func (g *AIEmailGenerator) Channel() entity.Channel {
	return entity.ChannelEmail
}

func (g *AIEmailGenerator) GenerateForNewLead(ctx context.Context, event *entity.LeadAddedEvent) (entity.ChannelMessage, error) {
	leadName := event.Payload.Name

	body, err := g.client.Complete(ctx, emailSystemPrompt,
		fmt.Sprintf("Write a first outreach email to a new lead named %s who just signed up.", leadName))
	if err != nil {
		return nil, err
	}

	return entity.EmailMessage{
		To:      event.Payload.Email,
		Subject: fmt.Sprintf("Welcome, %s!", leadName),
		Body:    body,
	}, nil
}

func (g *AIEmailGenerator) GenerateForReply(ctx context.Context, event *entity.LeadRepliedEvent, previousMessages []entity.Message) (entity.ChannelMessage, error) {
	leadName := event.Payload.Lead.Name

	var history strings.Builder
	for _, m := range previousMessages {
		if email, ok := m.ChannelMessage.(entity.EmailMessage); ok {
			history.WriteString("Previous email we sent:\n" + email.Body + "\n\n")
		}
	}
	leadReply := ""
	if email, ok := event.Payload.LeadMessage.ChannelMessage.(entity.EmailMessage); ok {
		leadReply = email.Body
	}

	prompt := fmt.Sprintf("%sThe lead %s replied:\n%s\n\nWrite a helpful follow-up email.", history.String(), leadName, leadReply)

	body, err := g.client.Complete(ctx, emailSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Re: Welcome, %s!", leadName)
	if len(previousMessages) > 0 {
		if first, ok := previousMessages[0].ChannelMessage.(entity.EmailMessage); ok {
			subject = "Re: " + first.Subject
		}
	}

	return entity.EmailMessage{
		To:      event.Payload.Lead.Email,
		Subject: subject,
		Body:    body,
	}, nil
}
