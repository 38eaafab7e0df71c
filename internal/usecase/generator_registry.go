package usecase

import (
	"fmt"
	"sync"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

// ContentGeneratorRegistry mapeia canal -> estratégia de geração de conteúdo.
// Registrar duas vezes o mesmo canal sobrescreve a estratégia anterior.
type ContentGeneratorRegistry struct {
	mu         sync.RWMutex
	generators map[entity.Channel]ContentGenerator
}

func NewContentGeneratorRegistry() *ContentGeneratorRegistry {
	return &ContentGeneratorRegistry{
		generators: make(map[entity.Channel]ContentGenerator),
	}
}

func (r *ContentGeneratorRegistry) Register(generator ContentGenerator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[generator.Channel()] = generator
}

func (r *ContentGeneratorRegistry) Get(channel entity.Channel) (ContentGenerator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gen, ok := r.generators[channel]
	return gen, ok
}

// EnsureRegistered transforma "canal sem generator" em erro de startup
// para o conjunto de canais conhecido estaticamente pela composição
func (r *ContentGeneratorRegistry) EnsureRegistered(channels ...entity.Channel) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, channel := range channels {
		if _, ok := r.generators[channel]; !ok {
			return fmt.Errorf("nenhum content generator registrado para o canal: %s", channel)
		}
	}
	return nil
}
