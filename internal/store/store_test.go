package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/config"
	"storefront/internal/model"
)

func sampleDocument() *model.Document {
	return &model.Document{
		Users: []model.User{{ID: "u1", Email: "admin@gunshop.test", PasswordHash: "$2a$10$hash", Role: model.RoleAdmin}},
		Products: []model.Product{
			{"id": "p1", "title": "Scope", "price": 49.99, "tags": []interface{}{"optic", "sale"}},
		},
		Orders: []model.Order{
			{"id": "o1", "createdAt": float64(1700000000000), "total": 49.99, "customer": map[string]interface{}{"name": "Ann"}},
		},
	}
}

func storeConformance(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty read", func(t *testing.T) {
		doc, err := s.Read(ctx)
		require.NoError(t, err)
		assert.Empty(t, doc.Users)
		assert.NotNil(t, doc.Users)
		assert.NotNil(t, doc.Products)
		assert.NotNil(t, doc.Orders)
	})

	t.Run("write then read", func(t *testing.T) {
		want := sampleDocument()
		require.NoError(t, s.Write(ctx, want))

		got, err := s.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("last write wins", func(t *testing.T) {
		first, err := s.Read(ctx)
		require.NoError(t, err)
		second, err := s.Read(ctx)
		require.NoError(t, err)

		first.Products = append(first.Products, model.Product{"id": "p2"})
		second.Products = append(second.Products, model.Product{"id": "p3"})
		require.NoError(t, s.Write(ctx, first))
		require.NoError(t, s.Write(ctx, second))

		got, err := s.Read(ctx)
		require.NoError(t, err)
		require.Len(t, got.Products, 2)
		assert.Equal(t, "p3", got.Products[1].ID())
	})

	t.Run("reads are independent copies", func(t *testing.T) {
		doc, err := s.Read(ctx)
		require.NoError(t, err)
		doc.Products[0]["title"] = "mutated"

		again, err := s.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Scope", again.Products[0]["title"])
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		assert.Error(t, s.Write(canceled, sampleDocument()))
	})
}

func TestMemoryStore(t *testing.T) {
	storeConformance(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "db.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	storeConformance(t, s)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"products":[`)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.Read(context.Background())
	assert.ErrorContains(t, err, "decode document")
}

func TestBoltStore(t *testing.T) {
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	defer s.Close()

	storeConformance(t, s)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		driver  string
		wantErr bool
	}{
		{DriverFile, false},
		{DriverBolt, false},
		{DriverMemory, false},
		{"cassandra", true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			cfg := &config.Config{
				StoreDriver: tt.driver,
				DataFile:    filepath.Join(dir, "db.json"),
				BoltPath:    filepath.Join(dir, "store.db"),
			}
			s, err := Open(context.Background(), cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, s.Close())
		})
	}
}
