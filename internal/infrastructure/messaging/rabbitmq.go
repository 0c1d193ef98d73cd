package messaging

import (
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ConnectRabbitMQ dials the broker when a URL is configured. It returns nil
// without error when RabbitMQ is not configured.
func ConnectRabbitMQ(url string, log *zap.Logger) (*amqp.Connection, error) {
	if url == "" {
		log.Info("[messaging] rabbitmq not configured; automation events will only be logged")
		return nil, nil
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Error("[messaging] failed to connect to rabbitmq", zap.Error(err))
		return nil, err
	}
	log.Info("[messaging] connected to rabbitmq")
	return conn, nil
}
