package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"

	amqp "github.com/rabbitmq/amqp091-go"
)

// MailConfig holds the SMTP relay settings.
type MailConfig struct {
	Host     string
	Port     string
	From     string
	Password string
}

type resetMailJob struct {
	To          string `json:"to"`
	ResetLink   string `json:"reset_link"`
	DisplayName string `json:"display_name"`
}

// MailDispatcher sends password-reset mail. With a RabbitMQ channel the job
// goes through a durable queue consumed by StartWorker; without one the
// send happens inline. Every delivery dials the relay fresh — there is no
// long-lived SMTP connection to go stale.
type MailDispatcher struct {
	cfg     MailConfig
	channel *amqp.Channel
	queue   string
}

func NewMailDispatcher(cfg MailConfig, channel *amqp.Channel, queue string) *MailDispatcher {
	return &MailDispatcher{cfg: cfg, channel: channel, queue: queue}
}

// SendResetEmail queues or delivers the reset mail.
func (d *MailDispatcher) SendResetEmail(to, resetLink, displayName string) error {
	job := resetMailJob{To: to, ResetLink: resetLink, DisplayName: displayName}
	if d.channel == nil {
		return d.deliver(job)
	}
	body, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.channel.Publish("", d.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

// StartWorker consumes the mail queue. A failed delivery is requeued once;
// a second failure drops the message.
func (d *MailDispatcher) StartWorker() error {
	msgs, err := d.channel.Consume(d.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}
	go func() {
		for msg := range msgs {
			var job resetMailJob
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				log.Printf("dropping malformed mail job: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			if err := d.deliver(job); err != nil {
				log.Printf("reset mail to %s failed: %v", job.To, err)
				_ = msg.Nack(false, !msg.Redelivered)
				continue
			}
			_ = msg.Ack(false)
		}
	}()
	return nil
}

func (d *MailDispatcher) deliver(job resetMailJob) error {
	body := fmt.Sprintf(
		"Hi %s!\n"+
			"You can reset your password at %s\n"+
			"This link will expire in 1 hour.\n"+
			"If you haven't requested password reset then you can ignore this mail and don't share this link with anyone\n",
		job.DisplayName, job.ResetLink,
	)
	message := fmt.Sprintf("From: %s\nTo: %s\nSubject: Reset Your Password\n\n%s",
		d.cfg.From, job.To, body)

	smtpAuth := smtp.PlainAuth("", d.cfg.From, d.cfg.Password, d.cfg.Host)
	return smtp.SendMail(d.cfg.Host+":"+d.cfg.Port, smtpAuth, d.cfg.From, []string{job.To}, []byte(message))
}
