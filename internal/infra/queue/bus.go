package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

// RabbitMQCommandBus publica o envelope serializado do comando na fila
// durável de comandos. Enfileirar é a unidade de trabalho: quem chama
// não espera a execução.
type RabbitMQCommandBus struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewCommandBus(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQCommandBus {
	return &RabbitMQCommandBus{
		Conn: conn,
		Ch:   ch,
	}
}

func (b *RabbitMQCommandBus) Send(ctx context.Context, command *entity.Command) error {
	body, err := json.Marshal(command)
	if err != nil {
		return fmt.Errorf("erro ao serializar comando: %w", err)
	}

	err = b.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         command.Name,
			MessageId:    command.ID,
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	commandsEnqueued.WithLabelValues(command.Name).Inc()
	return nil
}
