package listener

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-purchase-service/internal/logger"
	"github.com/fekuna/omnipos-purchase-service/internal/model"
	"github.com/fekuna/omnipos-purchase-service/internal/purchase/dto"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingUseCase struct {
	mu     sync.Mutex
	inputs []*dto.RecordPurchaseInput
}

func (r *recordingUseCase) ListPurchasedProducts(context.Context, string, map[string]any, int, int) ([]model.PurchasedProduct, int, error) {
	return nil, 0, nil
}

func (r *recordingUseCase) GetPurchasedProduct(context.Context, string) (*model.PurchasedProduct, error) {
	return nil, nil
}

func (r *recordingUseCase) RecordPurchase(_ context.Context, in *dto.RecordPurchaseInput) (*model.PurchasedProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputs = append(r.inputs, in)
	return &model.PurchasedProduct{}, nil
}

func (r *recordingUseCase) recorded() []*dto.RecordPurchaseInput {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*dto.RecordPurchaseInput(nil), r.inputs...)
}

// chanReader hands out queued messages, then blocks until ctx is done.
type chanReader struct {
	msgs chan kafka.Message
}

func (c *chanReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case m := <-c.msgs:
		return m, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func TestProcessMessage(t *testing.T) {
	uc := &recordingUseCase{}
	l := NewPurchaseListener(nil, uc, logger.NewNopLogger())

	l.processMessage(context.Background(), []byte(`{
		"event_id": "e-1",
		"event_type": "OrderCompleted",
		"timestamp": "2026-05-01T10:00:00Z",
		"payload": {
			"id": "o-1",
			"user_id": "u-1",
			"items": [
				{"product_id": "p-1", "name": "Kit", "tags": ["red"], "price": 10, "quantity": 2},
				{"product_id": "p-2", "name": "Reagent", "price": 3.5, "quantity": 1}
			]
		}
	}`))

	got := uc.recorded()
	require.Len(t, got, 2)
	assert.Equal(t, "u-1", got[0].UserID)
	assert.Equal(t, "o-1", got[0].PurchaseID)
	assert.Equal(t, []string{"red"}, got[0].Tags)
	assert.Equal(t, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC), got[1].PurchasedAt)
}

func TestProcessMessage_Ignored(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"malformed", `{not json`},
		{"other event", `{"event_type": "OrderCreated", "payload": {"id": "o-1", "user_id": "u-1", "items": [{"product_id": "p-1"}]}}`},
		{"no user", `{"event_type": "OrderCompleted", "payload": {"id": "o-1", "items": [{"product_id": "p-1"}]}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &recordingUseCase{}
			l := NewPurchaseListener(nil, uc, logger.NewNopLogger())
			l.processMessage(context.Background(), []byte(tc.value))
			assert.Empty(t, uc.recorded())
		})
	}
}

func TestStart_StopsOnCancel(t *testing.T) {
	uc := &recordingUseCase{}
	reader := &chanReader{msgs: make(chan kafka.Message, 1)}
	reader.msgs <- kafka.Message{Value: []byte(`{"event_type":"OrderCompleted","payload":{"id":"o-1","user_id":"u-1","items":[{"product_id":"p-1"}]}}`)}

	l := NewPurchaseListener(reader, uc, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(uc.recorded()) == 1 }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
}

type failingReader struct {
	calls int
}

func (f *failingReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	f.calls++
	return kafka.Message{}, errors.New("broker unavailable")
}

func TestStart_BacksOffOnError(t *testing.T) {
	reader := &failingReader{}
	l := NewPurchaseListener(reader, &recordingUseCase{}, logger.NewNopLogger())
	l.backoff = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	l.Start(ctx)

	assert.Equal(t, 1, reader.calls)
}
