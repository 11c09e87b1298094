package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/store"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	svc := NewOrderService(s, zap.NewNop())

	payloads := []map[string]interface{}{
		{
			"customer": map[string]interface{}{"name": "Ann", "email": "ann@example.test"},
			"items":    []interface{}{map[string]interface{}{"id": "p1", "qty": float64(2)}},
			"total":    99.98,
		},
		{"items": "not-an-array", "total": "free"},
		{},
		{"id": "caller-id", "createdAt": float64(1)},
	}

	start := time.Now().UnixMilli()
	seen := map[string]bool{}
	for _, payload := range payloads {
		order, err := svc.PlaceOrder(ctx, payload)
		require.NoError(t, err)

		assert.NotEmpty(t, order.ID())
		assert.NotEqual(t, "caller-id", order.ID())
		assert.False(t, seen[order.ID()], "order ids must be unique")
		seen[order.ID()] = true
		assert.GreaterOrEqual(t, order.CreatedAt(), start)
		for k, v := range payload {
			if k == model.FieldID || k == model.FieldCreatedAt {
				continue
			}
			assert.Equal(t, v, order[k])
		}
	}

	doc, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Orders, len(payloads))
}

func TestOrderService_PlaceOrder_UsesClock(t *testing.T) {
	svc := NewOrderService(store.NewMemoryStore(), zap.NewNop())
	fixed := time.UnixMilli(1700000000123)
	svc.(*orderService).now = func() time.Time { return fixed }

	order, err := svc.PlaceOrder(context.Background(), map[string]interface{}{"total": 10.0})

	require.NoError(t, err)
	assert.Equal(t, int64(1700000000123), order.CreatedAt())
}

func TestOrderService_PlaceOrder_NilPayload(t *testing.T) {
	mockStore := new(MockDocumentStore)
	svc := NewOrderService(mockStore, zap.NewNop())

	_, err := svc.PlaceOrder(context.Background(), nil)

	assert.ErrorIs(t, err, errors.ErrInvalidPayload)
	mockStore.AssertNotCalled(t, "Read", mock.Anything)
}
