package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-purchase-service/internal/logger"
	"github.com/fekuna/omnipos-purchase-service/internal/purchase"
	"github.com/fekuna/omnipos-purchase-service/internal/purchase/dto"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const orderCompleted = "OrderCompleted"

// MessageReader is satisfied by *broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type PurchaseListener struct {
	consumer MessageReader
	uc       purchase.UseCase
	logger   logger.ZapLogger
	backoff  time.Duration
}

func NewPurchaseListener(consumer MessageReader, uc purchase.UseCase, logger logger.ZapLogger) *PurchaseListener {
	return &PurchaseListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
		backoff:  time.Second,
	}
}

func (l *PurchaseListener) Start(ctx context.Context) {
	l.logger.Info("Starting Purchase Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Purchase Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.backoff):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type OrderCompletedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID     string             `json:"id"`
	UserID string             `json:"user_id"`
	Items  []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Tags      []string `json:"tags"`
	Price     float64  `json:"price"`
	Quantity  float64  `json:"quantity"`
}

func (l *PurchaseListener) processMessage(ctx context.Context, value []byte) {
	var event OrderCompletedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != orderCompleted {
		return
	}
	if event.Payload.UserID == "" {
		l.logger.Warn("OrderCompleted event without user", zap.String("order_id", event.Payload.ID))
		return
	}

	l.logger.Info("Processing OrderCompleted event", zap.String("order_id", event.Payload.ID))

	for _, item := range event.Payload.Items {
		input := &dto.RecordPurchaseInput{
			UserID:      event.Payload.UserID,
			PurchaseID:  event.Payload.ID,
			ProductID:   item.ProductID,
			Name:        item.Name,
			Tags:        item.Tags,
			Price:       item.Price,
			Quantity:    item.Quantity,
			PurchasedAt: event.Timestamp,
		}

		if _, err := l.uc.RecordPurchase(ctx, input); err != nil {
			l.logger.Error("Failed to record purchased product",
				zap.String("order_id", event.Payload.ID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
		}
	}
}
