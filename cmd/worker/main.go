package main

import (
	"log"

	"github.com/xavierca1/salespad-outreach/internal/infra/config"
	"github.com/xavierca1/salespad-outreach/internal/infra/integration/whatsapp"
	"github.com/xavierca1/salespad-outreach/internal/infra/mail"
	"github.com/xavierca1/salespad-outreach/internal/infra/queue"
)

// Worker de entrega: consome a fila de comandos e faz o envio outbound.
// Roda fora do processo da API; subir mais instâncias escala o consumo.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Senders por canal
	emailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	whatsappClient := whatsapp.NewClient(cfg.WhatsAppAccessToken, cfg.WhatsAppPhoneID)
	whatsappSender := mail.NewWhatsAppSender(whatsappClient)

	senders := queue.NewSenderRegistry()
	senders.Register(emailSender)
	senders.Register(whatsappSender)

	worker := queue.NewWorker(rabbitMQ.Ch, senders)
	worker.Start(queue.QueueName)
}
