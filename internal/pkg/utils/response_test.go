package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-reservation-service/internal/pkg/errors"
)

func call(t *testing.T, h fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSendSuccess(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return SendSuccess(c, []string{"a"}, &Meta{Total: 1})
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []interface{}{"a"}, body["data"])
	assert.Equal(t, float64(1), body["meta"].(map[string]interface{})["total"])
}

func TestSendCreated(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return SendCreated(c, map[string]string{"_id": "x"})
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.NotContains(t, body, "meta")
}

func TestSendError(t *testing.T) {
	t.Run("app error keeps status and details", func(t *testing.T) {
		status, body := call(t, func(c *fiber.Ctx) error {
			return SendError(c, fmt.Errorf("wrapped: %w", errors.ErrBannerPositionTaken.WithDetails(map[string]interface{}{
				"position": 2,
			})))
		})

		assert.Equal(t, fiber.StatusBadRequest, status)
		e := body["error"].(map[string]interface{})
		assert.Equal(t, "BANNER_POSITION_TAKEN", e["code"])
		assert.Equal(t, float64(2), e["details"].(map[string]interface{})["position"])
	})

	t.Run("unknown error is sanitized", func(t *testing.T) {
		status, body := call(t, func(c *fiber.Ctx) error {
			return SendError(c, fmt.Errorf("dial tcp 10.0.0.5:5432: connection refused"))
		})

		assert.Equal(t, fiber.StatusInternalServerError, status)
		e := body["error"].(map[string]interface{})
		assert.Equal(t, "INTERNAL_SERVER_ERROR", e["code"])
		assert.NotContains(t, e["message"], "10.0.0.5")
	})
}
