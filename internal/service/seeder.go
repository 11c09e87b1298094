package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/model"
	"storefront/internal/store"
)

const bcryptCost = 10

// SeedResult reports what Seed changed.
type SeedResult struct {
	AdminCreated   bool
	ProductsSeeded int
}

// Seeder prepares the first-boot document.
type Seeder struct {
	store store.DocumentStore
	log   *zap.Logger
}

// NewSeeder creates a seeder over the document store.
func NewSeeder(s store.DocumentStore, log *zap.Logger) *Seeder {
	return &Seeder{store: s, log: log}
}

// Seed adds the admin user when no user has adminEmail, and the sample
// catalog when the products collection is empty. It writes only when
// something was added.
func (s *Seeder) Seed(ctx context.Context, adminEmail, adminPassword string) (SeedResult, error) {
	var result SeedResult

	doc, err := s.store.Read(ctx)
	if err != nil {
		return result, fmt.Errorf("read document: %w", err)
	}

	if _, ok := doc.FindUserByEmail(adminEmail); !ok {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcryptCost)
		if err != nil {
			return result, fmt.Errorf("hash admin password: %w", err)
		}
		doc.Users = append(doc.Users, model.User{
			ID:           uuid.NewString(),
			Email:        adminEmail,
			PasswordHash: string(hash),
			Role:         model.RoleAdmin,
		})
		result.AdminCreated = true
	}

	if len(doc.Products) == 0 {
		doc.Products = SampleProducts()
		result.ProductsSeeded = len(doc.Products)
	}

	if !result.AdminCreated && result.ProductsSeeded == 0 {
		s.log.Info("seed skipped, document already initialised", zap.String("admin", adminEmail))
		return result, nil
	}

	if err := s.store.Write(ctx, doc); err != nil {
		return result, fmt.Errorf("write document: %w", err)
	}

	s.log.Info("document seeded",
		zap.String("admin", adminEmail),
		zap.Bool("admin_created", result.AdminCreated),
		zap.Int("products_seeded", result.ProductsSeeded),
	)
	return result, nil
}

// SampleProducts returns the demo catalog with fresh ids.
func SampleProducts() []model.Product {
	return []model.Product{
		{
			"id":          uuid.NewString(),
			"title":       "Tactical Range Backpack",
			"price":       149.99,
			"image":       "https://images.pexels.com/photos/889709/pexels-photo-889709.jpeg",
			"description": "Durable range backpack with multiple compartments.",
		},
		{
			"id":          uuid.NewString(),
			"title":       "Precision Optic (Replica)",
			"price":       299.00,
			"image":       "https://images.pexels.com/photos/2928147/pexels-photo-2928147.jpeg",
			"description": "High clarity optic for demonstration purposes.",
		},
		{
			"id":          uuid.NewString(),
			"title":       "Training Dummy (Non-functional)",
			"price":       89.50,
			"image":       "https://images.pexels.com/photos/163480/war-desert-guns-gunshow-163480.jpeg",
			"description": "Training aid for safe handling practice.",
		},
	}
}
