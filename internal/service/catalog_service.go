package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/store"
)

// CatalogService owns the products collection.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, payload map[string]interface{}) (model.Product, error)
	UpdateProduct(ctx context.Context, id string, payload map[string]interface{}) (model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type catalogService struct {
	store store.DocumentStore
	log   *zap.Logger
	newID func() string
}

// NewCatalogService creates a catalog service over the document store.
func NewCatalogService(s store.DocumentStore, log *zap.Logger) CatalogService {
	return &catalogService{
		store: s,
		log:   log,
		newID: uuid.NewString,
	}
}

// ListProducts returns the full persisted collection, empty when there is none.
func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return doc.Products, nil
}

// CreateProduct appends a product with a fresh id. Any id in payload is ignored.
func (s *catalogService) CreateProduct(ctx context.Context, payload map[string]interface{}) (model.Product, error) {
	if payload == nil {
		return nil, errors.ErrInvalidPayload
	}

	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	id := s.newID()
	for doc.ProductIndex(id) >= 0 {
		id = s.newID()
	}
	product := model.Product{model.FieldID: id}.Merge(payload)

	doc.Products = append(doc.Products, product)
	if err := s.store.Write(ctx, doc); err != nil {
		s.log.Error("persist created product", zap.String("product_id", id), zap.Error(err))
		return nil, fmt.Errorf("write document: %w", err)
	}

	s.log.Info("product created", zap.String("product_id", id), zap.String("actor", actor(ctx)))
	return product, nil
}

// UpdateProduct shallow-merges payload over the stored record.
func (s *catalogService) UpdateProduct(ctx context.Context, id string, payload map[string]interface{}) (model.Product, error) {
	if payload == nil {
		return nil, errors.ErrInvalidPayload
	}

	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	idx := doc.ProductIndex(id)
	if idx < 0 {
		return nil, fmt.Errorf("update product %s: %w", id, errors.ErrProductNotFound)
	}

	merged := doc.Products[idx].Merge(payload)
	doc.Products[idx] = merged
	if err := s.store.Write(ctx, doc); err != nil {
		s.log.Error("persist updated product", zap.String("product_id", id), zap.Error(err))
		return nil, fmt.Errorf("write document: %w", err)
	}

	s.log.Info("product updated", zap.String("product_id", id), zap.String("actor", actor(ctx)))
	return merged, nil
}

// DeleteProduct removes every product with id. Unknown ids still succeed.
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	kept := make([]model.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		if p.ID() != id {
			kept = append(kept, p)
		}
	}
	removed := len(doc.Products) - len(kept)
	doc.Products = kept

	if err := s.store.Write(ctx, doc); err != nil {
		s.log.Error("persist deleted product", zap.String("product_id", id), zap.Error(err))
		return fmt.Errorf("write document: %w", err)
	}

	s.log.Info("product deleted",
		zap.String("product_id", id),
		zap.Int("removed", removed),
		zap.String("actor", actor(ctx)),
	)
	return nil
}

func actor(ctx context.Context) string {
	if claims, ok := auth.ClaimsFromContext(ctx); ok {
		return claims.Email
	}
	return ""
}
