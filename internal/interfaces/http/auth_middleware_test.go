package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/inventario-restaurante/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/inventario-restaurante/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUserName  = "Laura"
	testIssuer    = "inventario-restaurante-test"
	testExpMin    = 60
)

// protectedApp expone GET /protected detrás de AuthMiddleware + RequireRole.
func protectedApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			actor := apphttp.GetActor(c)
			return c.JSON(fiber.Map{"id": actor.ID, "name": actor.Name, "role": actor.Role})
		},
	)
	return app
}

func bearer(t *testing.T, secret, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testUserID, testUserName, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func get(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		allowed  []string
		header   func(t *testing.T) string
		status   int
		wantCode string
	}{
		{
			name:    "admin en ruta de admin",
			allowed: []string{"admin"},
			header:  func(t *testing.T) string { return bearer(t, testJWTSecret, "admin") },
			status:  http.StatusOK,
		},
		{
			name:    "empleado en ruta abierta a ambos roles",
			allowed: []string{"admin", "empleado"},
			header:  func(t *testing.T) string { return bearer(t, testJWTSecret, "empleado") },
			status:  http.StatusOK,
		},
		{
			name:     "empleado en ruta de admin",
			allowed:  []string{"admin"},
			header:   func(t *testing.T) string { return bearer(t, testJWTSecret, "empleado") },
			status:   http.StatusForbidden,
			wantCode: "FORBIDDEN",
		},
		{
			name:     "rol desconocido",
			allowed:  []string{"empleado"},
			header:   func(t *testing.T) string { return bearer(t, testJWTSecret, "cajero") },
			status:   http.StatusForbidden,
			wantCode: "FORBIDDEN",
		},
		{
			name:     "token sin rol",
			allowed:  []string{"admin"},
			header:   func(t *testing.T) string { return bearer(t, testJWTSecret, "") },
			status:   http.StatusUnauthorized,
			wantCode: "MISSING_ROLE",
		},
		{
			name:     "sin header",
			allowed:  []string{"admin"},
			header:   func(*testing.T) string { return "" },
			status:   http.StatusUnauthorized,
			wantCode: "MISSING_TOKEN",
		},
		{
			name:     "token malformado",
			allowed:  []string{"admin"},
			header:   func(*testing.T) string { return "Bearer token.invalido.aqui" },
			status:   http.StatusUnauthorized,
			wantCode: "INVALID_TOKEN",
		},
		{
			name:     "esquema distinto de Bearer",
			allowed:  []string{"admin"},
			header:   func(*testing.T) string { return "Basic dXNlcjpwYXNz" },
			status:   http.StatusUnauthorized,
			wantCode: "INVALID_TOKEN",
		},
		{
			name:     "firmado con otro secret",
			allowed:  []string{"admin"},
			header:   func(t *testing.T) string { return bearer(t, "otro-secret", "admin") },
			status:   http.StatusUnauthorized,
			wantCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, protectedApp(tt.allowed...), tt.header(t))
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.wantCode != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Contains(t, string(body), tt.wantCode)
			}
		})
	}
}

func TestAuthMiddleware_CargaActorEnLocals(t *testing.T) {
	resp := get(t, protectedApp("admin"), bearer(t, testJWTSecret, "admin"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["id"])
	assert.Equal(t, testUserName, body["name"])
	assert.Equal(t, "admin", body["role"])
}
