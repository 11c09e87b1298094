package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/store"
)

// CredentialStore verifies login credentials against persisted users.
type CredentialStore interface {
	VerifyLogin(ctx context.Context, email, password string) (*model.User, error)
}

type credentialStore struct {
	store store.DocumentStore
}

// NewCredentialStore creates a credential store over the document store.
func NewCredentialStore(s store.DocumentStore) CredentialStore {
	return &credentialStore{store: s}
}

// VerifyLogin re-reads the users collection and matches the email exactly.
// Unknown emails and wrong passwords both fail with ErrInvalidCredentials.
func (c *credentialStore) VerifyLogin(ctx context.Context, email, password string) (*model.User, error) {
	doc, err := c.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	user, ok := doc.FindUserByEmail(email)
	if !ok {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	found := *user
	return &found, nil
}
