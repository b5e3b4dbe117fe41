package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"shelfshare.activity"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventType string

const (
	EventLogin          EventType = "LOGIN"
	EventSignup         EventType = "SIGNUP"
	EventLogout         EventType = "LOGOUT"
	EventRequestCreated EventType = "REQUEST_CREATED"
	EventRequestActed   EventType = "REQUEST_ACTED"
	EventBookCreated    EventType = "BOOK_CREATED"
	EventBookUpdated    EventType = "BOOK_UPDATED"
	EventBookDeleted    EventType = "BOOK_DELETED"
	EventBookReturned   EventType = "BOOK_RETURNED"
)

// Event is one user action observed by the web service after the upstream accepted it.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	EventType EventType `json:"event_type"`
	UserID    string    `json:"user_id,omitempty"`
	BookID    string    `json:"book_id,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Errors = true
	defaultCfg.Producer.Return.Successes = false

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}
