package content

import (
	"context"
	"fmt"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

// Generators dos canais que o resolver padrão ainda não produz. Ficam
// registrados para a checagem de exaustividade do startup cobrir o
// conjunto inteiro de canais.

type LinkedInGenerator struct{}

func NewLinkedInGenerator() *LinkedInGenerator {
	return &LinkedInGenerator{}
}

func (g *LinkedInGenerator) Channel() entity.Channel {
	return entity.ChannelLinkedIn
}

func (g *LinkedInGenerator) GenerateForNewLead(ctx context.Context, event *entity.LeadAddedEvent) (entity.ChannelMessage, error) {
	return entity.LinkedInMessage{
		ProfileURL: "",
		Text:       fmt.Sprintf("Hi %s! Thanks for your interest - we'd love to connect. - The SalesPad Team", event.Payload.Name),
	}, nil
}

func (g *LinkedInGenerator) GenerateForReply(ctx context.Context, event *entity.LeadRepliedEvent, previousMessages []entity.Message) (entity.ChannelMessage, error) {
	return entity.LinkedInMessage{
		ProfileURL: "",
		Text:       fmt.Sprintf("Thanks for getting back to us, %s! We'll follow up shortly. - The SalesPad Team", event.Payload.Lead.Name),
	}, nil
}

type VoiceGenerator struct{}

func NewVoiceGenerator() *VoiceGenerator {
	return &VoiceGenerator{}
}

func (g *VoiceGenerator) Channel() entity.Channel {
	return entity.ChannelVoice
}

func (g *VoiceGenerator) GenerateForNewLead(ctx context.Context, event *entity.LeadAddedEvent) (entity.ChannelMessage, error) {
	return entity.VoiceMessage{
		To:     event.Payload.Phone,
		Script: fmt.Sprintf("Hello %s, this is the SalesPad team. Thanks for your interest, we'd love to learn more about your needs.", event.Payload.Name),
	}, nil
}

func (g *VoiceGenerator) GenerateForReply(ctx context.Context, event *entity.LeadRepliedEvent, previousMessages []entity.Message) (entity.ChannelMessage, error) {
	return entity.VoiceMessage{
		To:     event.Payload.Lead.Phone,
		Script: fmt.Sprintf("Hello %s, thanks for getting back to us. A specialist will follow up shortly.", event.Payload.Lead.Name),
	}, nil
}

type AdsGenerator struct{}

func NewAdsGenerator() *AdsGenerator {
	return &AdsGenerator{}
}

func (g *AdsGenerator) Channel() entity.Channel {
	return entity.ChannelAds
}

func (g *AdsGenerator) GenerateForNewLead(ctx context.Context, event *entity.LeadAddedEvent) (entity.ChannelMessage, error) {
	return entity.AdsMessage{
		TargetAudience: "lookalike:" + event.Payload.LeadID,
		Headline:       "Grow your pipeline with SalesPad",
		Description:    "Multi-channel outreach that follows up for you.",
	}, nil
}

func (g *AdsGenerator) GenerateForReply(ctx context.Context, event *entity.LeadRepliedEvent, previousMessages []entity.Message) (entity.ChannelMessage, error) {
	return entity.AdsMessage{
		TargetAudience: "lookalike:" + event.Payload.Lead.ID,
		Headline:       "Keep the conversation going",
		Description:    "Re-engage leads that already replied to you.",
	}, nil
}
