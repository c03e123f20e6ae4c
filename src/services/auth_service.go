package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
)

// AuthenticateAdmin checks an admin's credentials and returns the account
// without its password hash.
func AuthenticateAdmin(ctx context.Context, store *repositories.Store, email, password string) (*models.Admin, error) {
	admin, err := store.Admins.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	result := *admin
	result.Password = ""
	return &result, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
