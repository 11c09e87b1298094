package service

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/auth"
	"storefront/internal/errors"
	"storefront/internal/model"
)

func adminDocument(t *testing.T, password string) *model.Document {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	doc := model.NewDocument()
	doc.Users = append(doc.Users, model.User{
		ID:           "u-1",
		Email:        "admin@gunshop.test",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	})
	return doc
}

func TestCredentialStore_VerifyLogin(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		readErr       error
		expectedError error
	}{
		{name: "valid credentials", email: "admin@gunshop.test", password: "AdminPass123"},
		{name: "wrong password", email: "admin@gunshop.test", password: "nope", expectedError: errors.ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@gunshop.test", password: "AdminPass123", expectedError: errors.ErrInvalidCredentials},
		{name: "email is case-sensitive", email: "Admin@gunshop.test", password: "AdminPass123", expectedError: errors.ErrInvalidCredentials},
		{name: "store failure", email: "admin@gunshop.test", password: "AdminPass123", readErr: io.ErrUnexpectedEOF, expectedError: io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockDocumentStore)
			if tt.readErr != nil {
				mockStore.On("Read", mock.Anything).Return(nil, tt.readErr)
			} else {
				mockStore.On("Read", mock.Anything).Return(adminDocument(t, "AdminPass123"), nil)
			}

			user, err := NewCredentialStore(mockStore).VerifyLogin(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "u-1", user.ID)
				assert.Equal(t, model.RoleAdmin, user.Role)
			}

			mockStore.AssertExpectations(t)
			mockStore.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 0)
	admin := &model.User{ID: "u-1", Email: "admin@gunshop.test", Role: model.RoleAdmin}

	tests := []struct {
		name          string
		setupMock     func(*MockCredentialStore)
		expectedError error
	}{
		{
			name: "successful login",
			setupMock: func(m *MockCredentialStore) {
				m.On("VerifyLogin", mock.Anything, "admin@gunshop.test", "AdminPass123").Return(admin, nil)
			},
		},
		{
			name: "invalid credentials",
			setupMock: func(m *MockCredentialStore) {
				m.On("VerifyLogin", mock.Anything, "admin@gunshop.test", "AdminPass123").Return(nil, errors.ErrInvalidCredentials)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := new(MockCredentialStore)
			tt.setupMock(creds)

			token, user, err := NewAuthService(creds, jwtService).Login(context.Background(), "admin@gunshop.test", "AdminPass123")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				claims, err := jwtService.Verify(token)
				require.NoError(t, err)
				assert.Equal(t, admin.ID, claims.UserID)
				assert.Equal(t, admin.Email, claims.Email)
				assert.Equal(t, admin.Role, claims.Role)
				assert.Equal(t, admin, user)
			}

			creds.AssertExpectations(t)
		})
	}
}
