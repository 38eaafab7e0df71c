package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

// ErrSkipJob marca um job que não deve ser reprocessado (nome de comando
// desconhecido). O worker dá ack e segue em frente, sem retry.
var ErrSkipJob = fmt.Errorf("job ignorado")

// Worker consome a fila de comandos um job por vez, resolve o sender do
// canal e executa a entrega. Vários workers podem rodar em paralelo em
// processos diferentes (escala horizontal).
type Worker struct {
	Channel *amqp.Channel
	Senders *SenderRegistry
}

func NewWorker(ch *amqp.Channel, senders *SenderRegistry) *Worker {
	return &Worker{
		Channel: ch,
		Senders: senders,
	}
}

func (w *Worker) Start(queueName string) {
	// Um job por slot de worker
	if err := w.Channel.Qos(1, 0, false); err != nil {
		log.Fatalf("❌ Falha ao configurar QoS: %s", err)
	}

	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			log.Printf("📥 [WORKER] Comando recebido da fila")

			var command entity.Command
			if err := json.Unmarshal(d.Body, &command); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.ProcessCommand(context.Background(), &command); err != nil {
				if err == ErrSkipJob {
					jobsProcessed.WithLabelValues(command.Name, "skipped").Inc()
					d.Ack(false)
					continue
				}
				log.Printf("❌ [WORKER] Erro ao processar comando %s: %s", command.ID, err)
				jobsProcessed.WithLabelValues(command.Name, "error").Inc()
				// Vai para a DLX; política de retry/dead-letter é da fila
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Comando %s processado com sucesso", command.ID)
				jobsProcessed.WithLabelValues(command.Name, "success").Inc()
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

// ProcessCommand roteia o job pelo nome do comando
func (w *Worker) ProcessCommand(ctx context.Context, command *entity.Command) error {
	switch command.Name {
	case entity.SendMessageCommandName:
		return w.processSendMessage(ctx, command)

	default:
		log.Printf("⚠️ [WORKER] Comando desconhecido: %s. Apenas logando.", command.Name)
		return ErrSkipJob
	}
}

func (w *Worker) processSendMessage(ctx context.Context, command *entity.Command) error {
	payload, err := entity.DecodeSendMessagePayload(command.Payload)
	if err != nil {
		return fmt.Errorf("payload inválido no comando %s: %w", command.ID, err)
	}

	log.Printf("⚙️ [WORKER] Enviando mensagem %s (canal: %s, lead: %s)",
		payload.ID, payload.Channel, command.CorrelationIDs[entity.CorrelationLeadID])

	sender, ok := w.Senders.Get(payload.Channel)
	if !ok {
		// Canal mal configurado: falha o job, a fila decide o retry
		return fmt.Errorf("nenhum sender registrado para o canal: %s", payload.Channel)
	}

	if err := sender.Send(ctx, payload.ChannelMessage); err != nil {
		return fmt.Errorf("falha na entrega via %s: %w", payload.Channel, err)
	}

	return nil
}
