package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shop/config"
	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/router"
	"shop/internal/delivery/api/router/handler"
	"shop/internal/infra/auth"
	"shop/internal/infra/cache"
	"shop/internal/infra/metrics"
	"shop/internal/infra/persistence/memory"
	"shop/internal/infra/pubsub"
	"shop/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

const espressoBeans = "5f1c3a52-7a8e-4a55-8d9e-1a2b3c4d0001"

// newTestAPI assembles the API over the in-memory store with the same fx
// modules the binary uses.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: bcrypt.MinCost, MinPasswordLength: 8},
		Wallet:  &config.WalletConfig{InitialBalance: "10000"},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var params router.RouterParams
	app := fxtest.New(t,
		fx.Supply(cfg, logger),
		fx.Provide(context.Background),
		memory.Module,
		metrics.Module,
		pubsub.Module,
		cache.Module,
		fx.Provide(auth.NewBcryptHasher, auth.NewJWTService),
		impl.Module,
		handler.Module,
		fx.Provide(middleware.NewAuthMiddleware),
		fx.Invoke(func(store *memory.Store) {
			memory.SeedDemoCatalog(store, time.Now())
		}),
		fx.Invoke(func(p router.RouterParams) {
			params = p
		}),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return NewEcho(cfg, logger, params)
}

type apiEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func call(t *testing.T, e *echo.Echo, method, path, token, body string, headers ...string) (int, apiEnvelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	var env apiEnvelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec.Code, env
}

func dataField[T any](t *testing.T, env apiEnvelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func TestAPI_PurchaseFlow(t *testing.T) {
	e := newTestAPI(t)

	status, _ := call(t, e, http.MethodPost, "/auth/register", "",
		`{"name":"Ada","email":"Ada@Example.com","password":"correct-horse"}`)
	require.Equal(t, http.StatusCreated, status)

	status, env := call(t, e, http.MethodPost, "/auth/login", "",
		`{"email":"ada@example.com","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, status)
	token := dataField[handler.TokenResponse](t, env).AccessToken
	require.NotEmpty(t, token)

	status, env = call(t, e, http.MethodGet, "/api/v1/wallet", token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "10000.00", dataField[handler.WalletResponse](t, env).Cash)

	status, _ = call(t, e, http.MethodPost, "/api/v1/addresses", token,
		`{"phone_number":"555-0100","postal_code":"10115","street_address":"Invalidenstr.","house_number":"1","city":"Berlin","state":"BE","country":"DE"}`)
	require.Equal(t, http.StatusCreated, status)

	status, _ = call(t, e, http.MethodPost, "/api/v1/cart", token,
		`{"product_id":"`+espressoBeans+`","quantity":2}`)
	require.Equal(t, http.StatusCreated, status)

	status, env = call(t, e, http.MethodPost, "/api/v1/cart", token,
		`{"product_id":"`+espressoBeans+`","quantity":1}`)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CART_ITEM_ALREADY_EXISTS", env.Error.Code)

	status, env = call(t, e, http.MethodPost, "/api/v1/orders/checkout", token, `{"promo_code":"WELCOME10"}`)
	require.Equal(t, http.StatusCreated, status)
	checkout := dataField[handler.CheckoutResponse](t, env)
	assert.Equal(t, "49.80", checkout.Subtotal)
	assert.Equal(t, "4.98", checkout.Discount)
	assert.Equal(t, "44.82", checkout.Total)
	require.Len(t, checkout.Orders, 1)
	assert.Equal(t, "processing", checkout.Orders[0].Status)

	status, env = call(t, e, http.MethodGet, "/api/v1/cart", token, "")
	require.Equal(t, http.StatusOK, status)
	cart := dataField[handler.CartResponse](t, env)
	assert.Empty(t, cart.Items)
	assert.Equal(t, "0.00", cart.Total)

	status, env = call(t, e, http.MethodGet, "/api/v1/promo-codes/WELCOME10", token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, dataField[handler.PromoCodeResponse](t, env).CurrentUsage)

	status, env = call(t, e, http.MethodPost, "/api/v1/payments", token, `{"amount":"44.82"}`,
		handler.HeaderIdempotencyKey, "checkout-1")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "9955.18", dataField[handler.PaymentResponse](t, env).Balance)

	status, env = call(t, e, http.MethodPost, "/api/v1/payments", token, `{"amount":"10000"}`)
	require.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "INSUFFICIENT_FUNDS", env.Error.Code)

	status, env = call(t, e, http.MethodPatch, "/api/v1/orders/complete", token,
		`{"product_id":"`+espressoBeans+`"}`)
	require.Equal(t, http.StatusOK, status)
	orders := dataField[[]handler.OrderResponse](t, env)
	require.Len(t, orders, 1)
	assert.Equal(t, "completed", orders[0].Status)
}

func registerAndLogin(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()

	status, _ := call(t, e, http.MethodPost, "/auth/register", "",
		`{"name":"Grace","email":"`+email+`","password":"correct-horse"}`)
	require.Equal(t, http.StatusCreated, status)

	status, env := call(t, e, http.MethodPost, "/auth/login", "",
		`{"email":"`+email+`","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, status)

	return dataField[handler.TokenResponse](t, env).AccessToken
}

func TestAPI_FavoritesAndAddresses(t *testing.T) {
	e := newTestAPI(t)
	token := registerAndLogin(t, e, "grace@example.com")

	status, env := call(t, e, http.MethodPost, "/api/v1/favorites", token, `{"product_id":"`+espressoBeans+`"}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, dataField[handler.FavoriteToggleResponse](t, env).Favorite)

	status, env = call(t, e, http.MethodGet, "/api/v1/favorites", token, "")
	require.Equal(t, http.StatusOK, status)
	favorites := dataField[[]handler.ProductResponse](t, env)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Espresso beans 1kg", favorites[0].Name)

	status, env = call(t, e, http.MethodPost, "/api/v1/favorites", token, `{"product_id":"`+espressoBeans+`"}`)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, dataField[handler.FavoriteToggleResponse](t, env).Favorite)

	status, env = call(t, e, http.MethodPost, "/api/v1/addresses", token,
		`{"phone_number":"555-0100","postal_code":"10115","street_address":"Invalidenstr.","house_number":"1","city":"Berlin","state":"BE","country":"DE"}`)
	require.Equal(t, http.StatusCreated, status)
	addressID := dataField[handler.AddressResponse](t, env).ID.String()

	status, env = call(t, e, http.MethodPut, "/api/v1/addresses/"+addressID, token,
		`{"phone_number":"555-0100","postal_code":"20095","street_address":"Jungfernstieg","house_number":"7","city":"Hamburg","state":"HH","country":"DE"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hamburg", dataField[handler.AddressResponse](t, env).City)

	other := registerAndLogin(t, e, "mallory@example.com")
	status, env = call(t, e, http.MethodDelete, "/api/v1/addresses/"+addressID, other, "")
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "SHIPPING_ADDRESS_NOT_FOUND", env.Error.Code)

	status, _ = call(t, e, http.MethodDelete, "/api/v1/addresses/"+addressID, token, "")
	require.Equal(t, http.StatusNoContent, status)

	status, env = call(t, e, http.MethodGet, "/api/v1/addresses", token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, dataField[[]handler.AddressResponse](t, env))
}

func TestAPI_PasswordResetRequestDoesNotRevealAccounts(t *testing.T) {
	e := newTestAPI(t)
	registerAndLogin(t, e, "known@example.com")

	known, _ := call(t, e, http.MethodPost, "/auth/password-reset", "", `{"email":"known@example.com"}`)
	unknown, _ := call(t, e, http.MethodPost, "/auth/password-reset", "", `{"email":"nobody@example.com"}`)

	assert.Equal(t, http.StatusAccepted, known)
	assert.Equal(t, known, unknown)

	status, env := call(t, e, http.MethodPost, "/auth/password-reset/confirm", "", `{"token":"garbage","new_password":"another-horse"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_RESET_TOKEN", env.Error.Code)
}

func TestAPI_RejectsAnonymousCalls(t *testing.T) {
	e := newTestAPI(t)

	status, env := call(t, e, http.MethodGet, "/api/v1/cart", "", "")

	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestAPI_PublicRoutes(t *testing.T) {
	e := newTestAPI(t)

	status, _ := call(t, e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, status)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
