package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// EventHandlerFunc reage a um evento de domínio publicado em processo
type EventHandlerFunc func(ctx context.Context, event any) error

// EventDispatcher é a tabela explícita evento -> handlers, montada na
// composição do processo. Dispatch é síncrono e testável; Publish roda
// os handlers em uma goroutine supervisionada cuja falha é logada, nunca
// engolida em silêncio.
type EventDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandlerFunc
}

func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		handlers: make(map[string][]EventHandlerFunc),
	}
}

func (d *EventDispatcher) Register(eventName string, handler EventHandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Dispatch executa os handlers registrados em sequência e devolve a
// primeira falha. Evento sem handler registrado não é erro.
func (d *EventDispatcher) Dispatch(ctx context.Context, eventName string, event any) error {
	d.mu.RLock()
	handlers := d.handlers[eventName]
	d.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			return fmt.Errorf("handler de '%s' falhou: %w", eventName, err)
		}
	}
	return nil
}

// Publish dispara os handlers sem bloquear o chamador (fire-and-forget
// supervisionado). O processamento não pode morrer junto com o request,
// então o contexto segue sem o cancel do chamador.
func (d *EventDispatcher) Publish(ctx context.Context, eventName string, event any) {
	detached := context.WithoutCancel(ctx)
	go func() {
		if err := d.Dispatch(detached, eventName, event); err != nil {
			log.Printf("❌ [EVENTS] Falha ao processar '%s': %v", eventName, err)
		}
	}()
}
