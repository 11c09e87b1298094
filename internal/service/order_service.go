package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/store"
)

// OrderService records orders from any caller. Orders are append-only.
type OrderService interface {
	PlaceOrder(ctx context.Context, payload map[string]interface{}) (model.Order, error)
}

type orderService struct {
	store store.DocumentStore
	log   *zap.Logger
	newID func() string
	now   func() time.Time
}

// NewOrderService creates an order service over the document store.
func NewOrderService(s store.DocumentStore, log *zap.Logger) OrderService {
	return &orderService{
		store: s,
		log:   log,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// PlaceOrder stores payload with a generated id and createdAt (Unix ms).
// The payload shape is not validated; caller values for id and createdAt
// are overwritten.
func (s *orderService) PlaceOrder(ctx context.Context, payload map[string]interface{}) (model.Order, error) {
	if payload == nil {
		return nil, errors.ErrInvalidPayload
	}

	order := make(model.Order, len(payload)+2)
	for k, v := range payload {
		order[k] = v
	}
	order[model.FieldCreatedAt] = s.now().UnixMilli()

	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	id := s.newID()
	for orderExists(doc, id) {
		id = s.newID()
	}
	order[model.FieldID] = id

	doc.Orders = append(doc.Orders, order)
	if err := s.store.Write(ctx, doc); err != nil {
		s.log.Error("persist order", zap.String("order_id", id), zap.Error(err))
		return nil, fmt.Errorf("write document: %w", err)
	}

	s.log.Info("order placed", zap.String("order_id", id), zap.Int("fields", len(payload)))
	return order, nil
}

func orderExists(doc *model.Document, id string) bool {
	for _, o := range doc.Orders {
		if o.ID() == id {
			return true
		}
	}
	return false
}
