package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Merge(t *testing.T) {
	original := Product{"id": "p1", "title": "Scope", "price": 49.99, "tags": []interface{}{"optic"}}

	merged := original.Merge(map[string]interface{}{
		"id":    "hijack",
		"price": 39.99,
		"tags":  []interface{}{"sale"},
	})

	assert.Equal(t, "p1", merged.ID())
	assert.Equal(t, "Scope", merged["title"])
	assert.Equal(t, 39.99, merged["price"])
	assert.Equal(t, []interface{}{"sale"}, merged["tags"])
	assert.Equal(t, 49.99, original["price"], "merge must not mutate the source record")
}

func TestDocument_Normalize(t *testing.T) {
	doc := (&Document{}).Normalize()

	assert.NotNil(t, doc.Users)
	assert.NotNil(t, doc.Products)
	assert.NotNil(t, doc.Orders)
}

func TestDocument_FindUserByEmail(t *testing.T) {
	doc := &Document{Users: []User{{ID: "u1", Email: "admin@gunshop.test", Role: RoleAdmin}}}

	u, ok := doc.FindUserByEmail("admin@gunshop.test")
	assert.True(t, ok)
	assert.Equal(t, "u1", u.ID)

	_, ok = doc.FindUserByEmail("ADMIN@gunshop.test")
	assert.False(t, ok)
}

func TestOrder_CreatedAt(t *testing.T) {
	assert.Equal(t, int64(1700000000000), Order{"createdAt": float64(1700000000000)}.CreatedAt())
	assert.Equal(t, int64(5), Order{"createdAt": int64(5)}.CreatedAt())
	assert.Zero(t, Order{}.CreatedAt())
}
