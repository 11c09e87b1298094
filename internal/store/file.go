package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"storefront/internal/model"
)

// FileStore keeps the document in a JSON file laid out as
// {"users":[...],"products":[...],"orders":[...]}.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore prepares a file-backed store, creating the parent directory.
// The file itself is created on first write.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "create data dir for %s", path)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Read(ctx context.Context) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return model.NewDocument(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.path)
	}
	return decode(data)
}

// Write encodes the document into a temp file next to the target and
// renames it into place.
func (s *FileStore) Write(ctx context.Context, doc *model.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "write %s", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "sync %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmpName)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Wrapf(err, "replace %s", s.path)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
