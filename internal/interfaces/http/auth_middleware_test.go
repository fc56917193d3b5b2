package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	api := app.Group("/api", AuthMiddleware(testSecret))
	api.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": GetUsername(c), "role": GetRole(c)})
	})
	api.Put("/solo-admin", RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := jwt.Generate(testSecret, "u-1", "laura", role, "stockmaster-test", 60)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddlewareSinHeader(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/api/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareFormatoInvalido(t *testing.T) {
	app := newProtectedApp(t)

	for _, header := range []string{"token-sin-prefijo", "Basic abc", "Bearer "} {
		req := httptest.NewRequest("GET", "/api/whoami", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header: %q", header)
	}
}

func TestAuthMiddlewareTokenConFirmaAjena(t *testing.T) {
	app := newProtectedApp(t)

	tok, err := jwt.Generate("otro-secreto", "u-1", "laura", entity.RoleUser, "stockmaster-test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareTokenValido(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, entity.RoleUser))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleRechazaUsuarioComun(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("PUT", "/api/solo-admin", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, entity.RoleUser))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRolePermiteAdmin(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("PUT", "/api/solo-admin", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, entity.RoleAdmin))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
