package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/rustock/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/rustock/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testManagerID = "00000000-0000-0000-0000-000000000001"
	testUsername  = "admin"
	testIssuer    = "rustock-test"
	testExpMin    = 60
)

// fakeChecker implementa el contrato de RequireActiveManager.
type fakeChecker struct {
	active bool
	err    error
}

func (f fakeChecker) IsActive(context.Context, string) (bool, error) { return f.active, f.err }

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireActiveManager con el checker indicado
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(checker fakeChecker) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireActiveManager(checker),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"manager_id": apphttp.GetManagerID(c),
				"username":   apphttp.GetUsername(c),
			})
		},
	)
	return app
}

func bearer(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testManagerID, testUsername, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido de un manager activo → 200 y claims en locals.
func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	resp := doRequest(t, buildTestApp(fakeChecker{active: true}), bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testManagerID, body["manager_id"])
	assert.Equal(t, testUsername, body["username"])
}

// Caso 2: sin header Authorization → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp := doRequest(t, buildTestApp(fakeChecker{active: true}), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 3: esquema distinto de Bearer → 401 INVALID_TOKEN.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	resp := doRequest(t, buildTestApp(fakeChecker{active: true}), "Basic abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 4: token malformado → 401.
func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	resp := doRequest(t, buildTestApp(fakeChecker{active: true}), "Bearer token.invalido.aqui")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token firmado con otro secret → 401.
func TestAuthMiddleware_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testManagerID, testUsername, testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, buildTestApp(fakeChecker{active: true}), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireActiveManager
// ──────────────────────────────────────────────────────────────────────────────

// Manager desactivado después de emitir el token → 403.
func TestRequireActiveManager_Inactivo(t *testing.T) {
	resp := doRequest(t, buildTestApp(fakeChecker{active: false}), bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MANAGER_INACTIVE")
}

// Fallo de almacenamiento al verificar → 503.
func TestRequireActiveManager_ErrorDeConsulta(t *testing.T) {
	resp := doRequest(t, buildTestApp(fakeChecker{err: errors.New("db caída")}), bearer(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
