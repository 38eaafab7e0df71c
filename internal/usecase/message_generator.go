package usecase

import (
	"context"
	"sync"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

// MessageGenerator orquestra o resolver de canais e o registry de
// estratégias para produzir o lote de mensagens do outreach inicial.
type MessageGenerator struct {
	Resolver ChannelResolverInterface
	Registry *ContentGeneratorRegistry
}

func NewMessageGenerator(resolver ChannelResolverInterface, registry *ContentGeneratorRegistry) *MessageGenerator {
	return &MessageGenerator{
		Resolver: resolver,
		Registry: registry,
	}
}

// Generate gera uma mensagem por canal resolvido, tudo em paralelo.
// Semântica tudo-ou-nada: se qualquer canal falhar, o lote inteiro falha
// e nenhuma mensagem é produzida. Lista de canais vazia retorna lote
// vazio sem erro.
func (g *MessageGenerator) Generate(ctx context.Context, event *entity.LeadAddedEvent) ([]entity.Message, error) {
	channels := g.Resolver.Resolve(event.Payload.Email, event.Payload.Phone)
	if len(channels) == 0 {
		return []entity.Message{}, nil
	}

	messages := make([]entity.Message, len(channels))
	errs := make([]error, len(channels))

	var wg sync.WaitGroup
	for i, channel := range channels {
		wg.Add(1)
		go func(i int, channel entity.Channel) {
			defer wg.Done()

			message, err := g.generateForChannel(ctx, channel, event)
			if err != nil {
				errs[i] = err
				return
			}
			messages[i] = *message
		}(i, channel)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return messages, nil
}

func (g *MessageGenerator) generateForChannel(ctx context.Context, channel entity.Channel, event *entity.LeadAddedEvent) (*entity.Message, error) {
	generator, ok := g.Registry.Get(channel)
	if !ok {
		return nil, &DomainError{
			Code:    CodeChannelNotRegistered,
			Message: "nenhum content generator registrado para o canal: " + string(channel),
		}
	}

	channelMessage, err := generator.GenerateForNewLead(ctx, event)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeGenerationFailed,
			Message: "falha ao gerar conteúdo para o canal " + string(channel) + ": " + err.Error(),
		}
	}

	return entity.NewMessage(channelMessage), nil
}
