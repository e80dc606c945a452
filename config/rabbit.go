package config

import (
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// InitRabbit connects the mail queue broker and declares the durable queue.
// An empty URL disables queued dispatch; reset mail then goes out inline.
func InitRabbit(cfg *Config) (*amqp.Connection, *amqp.Channel, error) {
	url := cfg.RabbitMQ.Url
	if url == "" {
		log.Println("rabbitmq url empty, skipping rabbit init")
		return nil, nil, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQ.Queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, nil, err
	}

	log.Println("RabbitMQ initialized, queue:", cfg.RabbitMQ.Queue)
	return conn, ch, nil
}
