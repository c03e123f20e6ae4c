package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-SurveyHub/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database
// package. Without Redis every helper degrades to a no-op.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// StoreRefreshToken keeps a refresh token in Redis with an expiration.
func StoreRefreshToken(adminID, refreshToken string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", adminID)
	if err := client.Set(Ctx, key, refreshToken, expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken checks a refresh token against the stored one.
// Returns true when Redis is not available so development logins still work.
func ValidateRefreshToken(adminID, refreshToken string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return true, nil
	}

	key := fmt.Sprintf("refresh_token:%s", adminID)
	stored, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get refresh token: %v", err)
	}
	return stored == refreshToken, nil
}

// DeleteRefreshToken drops a refresh token (logout).
func DeleteRefreshToken(adminID string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", adminID)
	if err := client.Del(Ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	return nil
}

// statsKey scopes cached statistics by tenant, survey and publication.
// The tenant segment keeps one tenant's cache entries invisible to every
// other tenant; the survey segment ties the entry to the exact URL that
// produced it.
func statsKey(tenantID, surveyID, publicationID string) string {
	return fmt.Sprintf("survey_stats:%s:%s:%s", tenantID, surveyID, publicationID)
}

// CacheSurveyStatistics stores a rendered survey-statistics payload so
// repeated dashboard polls do not recompute the aggregation.
func CacheSurveyStatistics(tenantID, surveyID, publicationID string, payload []byte, ttl time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	return client.Set(Ctx, statsKey(tenantID, surveyID, publicationID), payload, ttl).Err()
}

// GetCachedSurveyStatistics returns a cached payload, or nil on miss or
// when Redis is not available.
func GetCachedSurveyStatistics(tenantID, surveyID, publicationID string) []byte {
	client := ensureClient()
	if client == nil {
		return nil
	}

	payload, err := client.Get(Ctx, statsKey(tenantID, surveyID, publicationID)).Bytes()
	if err != nil {
		return nil
	}
	return payload
}

// InvalidateSurveyStatistics drops the cached payload after a close or a
// new submission makes it stale.
func InvalidateSurveyStatistics(tenantID, surveyID, publicationID string) {
	client := ensureClient()
	if client == nil {
		return
	}
	client.Del(Ctx, statsKey(tenantID, surveyID, publicationID))
}
