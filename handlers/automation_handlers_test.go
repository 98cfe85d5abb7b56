package handlers

import (
	"net/http/httptest"
	"testing"

	"app/config"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAutomationEndpointsRequireAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/api/v1/merchant/automation/low-stock", middleware.Authenticate, middleware.MerchantRequired, HandleLowStockCheck)

	req := httptest.NewRequest("GET", "/api/v1/merchant/automation/low-stock", nil)

	resp, _ := app.Test(req, 1)

	assert.Equal(t, 401, resp.StatusCode)
}

func TestJWTRoundTripThroughMiddleware(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := createJWT("user-123", "merchant")
	assert.NoError(t, err)

	app := fiber.New()
	app.Get("/whoami", middleware.Authenticate, middleware.MerchantRequired, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userID").(string))
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, 1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestMerchantRoleIsEnforced(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := createJWT("user-456", "admin")
	assert.NoError(t, err)

	app := fiber.New()
	app.Get("/whoami", middleware.Authenticate, middleware.MerchantRequired, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, _ := app.Test(req, 1)
	assert.Equal(t, 403, resp.StatusCode)
}
