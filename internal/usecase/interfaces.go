package usecase

import (
	"context"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

// CommandBusInterface aceita um comando e o enfileira de forma durável.
// Enfileirar é a unidade de trabalho: o bus não espera a execução.
type CommandBusInterface interface {
	Send(ctx context.Context, command *entity.Command) error
}

// ContentGenerator é a estratégia de conteúdo de um canal específico
type ContentGenerator interface {
	Channel() entity.Channel
	GenerateForNewLead(ctx context.Context, event *entity.LeadAddedEvent) (entity.ChannelMessage, error)
	GenerateForReply(ctx context.Context, event *entity.LeadRepliedEvent, previousMessages []entity.Message) (entity.ChannelMessage, error)
}

type ChannelResolverInterface interface {
	Resolve(email, phone string) []entity.Channel
}
