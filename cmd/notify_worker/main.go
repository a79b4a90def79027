package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/souravverma/portfolio-backend/config"
	"github.com/souravverma/portfolio-backend/pkg/mailer"
	tpl "github.com/souravverma/portfolio-backend/pkg/mailer/templates"
)

// Consumes contact notification jobs from RabbitMQ and delivers them to the
// site owner via Mailgun. Runs separately from the API so slow mail delivery
// never blocks form submissions.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if !cfg.MailSendEnabled {
		log.Println("MAIL_SEND_ENABLED=false; notification worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQNotifyQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQNotifyQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQNotifyQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var job mailer.ContactNotification
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			if err := deliver(ctx, mg, job); err != nil {
				log.Printf("send failed for %s: %v", job.MessageID, err)
				// requeue once; the broker drops it on the second failure
				_ = msg.Nack(false, !msg.Redelivered)
				continue
			}
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("notification worker consuming %q", cfg.RabbitMQNotifyQueue)
	select {
	case <-stop:
		log.Println("shutting down")
	case <-done:
		log.Println("channel closed")
	}
}

func deliver(ctx context.Context, mg *mailer.Mailgun, job mailer.ContactNotification) error {
	html, err := tpl.RenderContactNotification(tpl.ContactNotificationData{
		Name:       job.Name,
		Email:      job.Email,
		Phone:      job.Phone,
		Service:    job.Service,
		Message:    job.Message,
		ReceivedAt: job.ReceivedAt,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("New contact message from %s (%s)", job.Name, job.Service)
	text := fmt.Sprintf("%s <%s> asked about %s:\n\n%s", job.Name, job.Email, job.Service, job.Message)
	return mg.Send(ctx, job.To, subject, text, html)
}
