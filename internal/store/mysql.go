package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"storefront/internal/model"
)

const mysqlDocumentName = "storefront"

// documentRow is the single row holding the encoded document.
type documentRow struct {
	Name      string    `gorm:"primaryKey;size:64"`
	Body      string    `gorm:"type:longtext;not null"`
	UpdatedAt time.Time
}

func (documentRow) TableName() string { return "documents" }

// MySQLStore keeps the document in one row of the documents table.
type MySQLStore struct {
	db *gorm.DB
}

var _ Store = (*MySQLStore)(nil)

// NewMySQLStore connects through GORM and migrates the documents table.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "connect mysql")
	}
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, errors.Wrap(err, "auto-migrate documents")
	}
	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Read(ctx context.Context) (*model.Document, error) {
	var row documentRow
	err := s.db.WithContext(ctx).Where("name = ?", mysqlDocumentName).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.NewDocument(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "select document")
	}
	return decode([]byte(row.Body))
}

func (s *MySQLStore) Write(ctx context.Context, doc *model.Document) error {
	data, err := encode(doc)
	if err != nil {
		return err
	}
	row := documentRow{Name: mysqlDocumentName, Body: string(data)}
	return errors.Wrap(s.db.WithContext(ctx).Save(&row).Error, "save document")
}

func (s *MySQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
