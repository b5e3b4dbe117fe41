package handler

import (
	"encoding/json"
	"time"

	"github.com/Astemirdum/shelfshare/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/shelfshare/web/internal/session"
)

type activityLog struct {
	producer sarama.AsyncProducer
	topic    string
}

// NewActivityLog publishes events to topic; a nil producer drops them.
func NewActivityLog(producer sarama.AsyncProducer, topic string) *activityLog {
	return &activityLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *activityLog) Log(e kafka.Event) error {
	if l == nil || l.producer == nil {
		return nil
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: l.topic, Key: sarama.StringEncoder(e.UserID), Value: sarama.ByteEncoder(data)}
	l.producer.Input() <- msg
	return nil
}

func (h *Handler) track(c echo.Context, t kafka.EventType, e kafka.Event) {
	e.Timestamp = time.Now()
	e.EventType = t
	if e.UserID == "" {
		e.UserID = session.From(c).UserID()
	}
	if err := h.activity.Log(e); err != nil {
		h.log.Warn("activity log", zap.String("event", string(t)), zap.Error(err))
	}
}
