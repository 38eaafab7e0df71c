package usecase

import "github.com/xavierca1/salespad-outreach/internal/entity"

// DefaultChannelResolver decide os canais de contato a partir dos dados do
// lead. Puro, sem I/O: email primeiro, depois whatsapp, nessa ordem fixa.
// Lead sem email e sem telefone resulta em lista vazia (nenhum outreach).
type DefaultChannelResolver struct{}

func NewDefaultChannelResolver() *DefaultChannelResolver {
	return &DefaultChannelResolver{}
}

func (r *DefaultChannelResolver) Resolve(email, phone string) []entity.Channel {
	channels := []entity.Channel{}

	if email != "" {
		channels = append(channels, entity.ChannelEmail)
	}

	if phone != "" {
		channels = append(channels, entity.ChannelWhatsApp)
	}

	return channels
}
