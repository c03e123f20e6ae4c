package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
)

func TestAuthenticateAdmin(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	repositories.AddAdmin(store, &models.Admin{
		TenantID: primitive.NewObjectID(),
		Email:    "admin@example.com",
		Password: hash,
		Name:     "Admin",
		Role:     "admin",
	})

	t.Run("ValidCredentials", func(t *testing.T) {
		admin, err := AuthenticateAdmin(ctx, store, "Admin@Example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", admin.Email)
		assert.Empty(t, admin.Password)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := AuthenticateAdmin(ctx, store, "admin@example.com", "nope")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		_, err := AuthenticateAdmin(ctx, store, "ghost@example.com", "s3cret")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})
}
