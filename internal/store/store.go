// Package store persists the storefront document. Every driver keeps the
// whole document as one JSON value; callers re-read it before each
// operation and write it back in full after each mutation.
package store

import (
	"context"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"storefront/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DocumentStore reads and writes the persisted document.
type DocumentStore interface {
	// Read returns the latest persisted document. A store that was never
	// written yields an empty document, not an error.
	Read(ctx context.Context) (*model.Document, error)
	// Write replaces the persisted document.
	Write(ctx context.Context, doc *model.Document) error
}

// Store is a DocumentStore that owns an underlying connection or file handle.
type Store interface {
	DocumentStore
	io.Closer
}

func encode(doc *model.Document) ([]byte, error) {
	if doc == nil {
		doc = model.NewDocument()
	}
	data, err := json.Marshal(doc.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "encode document")
	}
	return data, nil
}

func decode(data []byte) (*model.Document, error) {
	if len(data) == 0 {
		return model.NewDocument(), nil
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}
	return doc.Normalize(), nil
}
