package queue

import (
	"context"
	"sync"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

// Sender faz a entrega outbound real de uma mensagem gerada. A fila
// entrega at-least-once, então Send precisa tolerar invocação duplicada
// para a mesma mensagem (idempotência fica por conta do provedor).
type Sender interface {
	Channel() entity.Channel
	Send(ctx context.Context, channelMessage entity.ChannelMessage) error
}

// SenderRegistry mapeia canal -> sender, mesmo contrato register/get do
// registry de content generators
type SenderRegistry struct {
	mu      sync.RWMutex
	senders map[entity.Channel]Sender
}

func NewSenderRegistry() *SenderRegistry {
	return &SenderRegistry{
		senders: make(map[entity.Channel]Sender),
	}
}

func (r *SenderRegistry) Register(sender Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.senders[sender.Channel()] = sender
}

func (r *SenderRegistry) Get(channel entity.Channel) (Sender, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sender, ok := r.senders[channel]
	return sender, ok
}
