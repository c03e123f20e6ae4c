package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/database"
)

// withRedis backs the shared Redis client with an in-process server for
// the duration of the test.
func withRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		database.RedisClient.Close()
		database.RedisClient = nil
	})
}

// asTenant wraps a handler the way the auth middleware would, fixing the
// tenant for every request.
func asTenant(tenantID primitive.ObjectID, handler fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("tenantId", tenantID.Hex())
		return handler(c)
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}
