package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorixona/pharmacy-api/internal/application/analytics"
	"github.com/dorixona/pharmacy-api/internal/application/cart"
	"github.com/dorixona/pharmacy-api/internal/application/catalog"
	"github.com/dorixona/pharmacy-api/internal/application/inventory"
	"github.com/dorixona/pharmacy-api/internal/application/orders"
	"github.com/dorixona/pharmacy-api/internal/application/sales"
	"github.com/dorixona/pharmacy-api/internal/infrastructure/memstore"
	"github.com/dorixona/pharmacy-api/internal/infrastructure/staticdata"
	apphttp "github.com/dorixona/pharmacy-api/internal/interfaces/http"
	"github.com/dorixona/pharmacy-api/internal/seed"
	"github.com/dorixona/pharmacy-api/internal/session"
	"github.com/dorixona/pharmacy-api/pkg/logger"
)

// buildApp wires a full application over fresh fixtures and a zero
// delay session store.
func buildApp(t *testing.T) (*fiber.App, *session.Store) {
	t.Helper()

	dir, err := seed.NewDirectory()
	require.NoError(t, err)
	store := session.New(memstore.NewVault(), dir, session.Config{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "dorixona-test",
		ExpMinutes: 60,
	}, logger.Nop())

	medicineRepo := staticdata.NewMedicineRepository()
	orderRepo := staticdata.NewOrderRepository()
	saleRepo := staticdata.NewSaleRepository()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:         store,
		CatalogUC:     catalog.NewUseCase(medicineRepo),
		CartUC:        cart.NewUseCase(medicineRepo, orderRepo),
		OrdersUC:      orders.NewUseCase(orderRepo),
		InventoryUC:   inventory.NewUseCase(medicineRepo, staticdata.NewStockMovementRepository()),
		SalesUC:       sales.NewUseCase(medicineRepo, saleRepo),
		AnalyticsUC:   analytics.NewUseCase(orderRepo, medicineRepo, staticdata.NewCustomerRepository(), saleRepo),
		Customers:     staticdata.NewCustomerRepository(),
		Notifications: staticdata.NewNotificationRepository(),
	})
	return app, store
}

func login(t *testing.T, store *session.Store, email, password string) {
	t.Helper()
	_, err := store.Login(context.Background(), email, password)
	require.NoError(t, err)
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ── mode selection and guards ────────────────────────────────────────────────

func TestPublicMode_CustomerRoutesUngated(t *testing.T) {
	app, _ := buildApp(t)

	for _, path := range []string{"/customer", "/customer/medicines", "/customer/search?q=paracetamol", "/customer/cart", "/customer/orders"} {
		resp := get(t, app, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "public mode must expose %s without gating", path)
		resp.Body.Close()
	}
}

func TestPublicMode_AdminRedirectsToAuth(t *testing.T) {
	app, _ := buildApp(t)

	resp := get(t, app, "/admin")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth", resp.Header.Get("Location"))
}

func TestCustomer_NeverReachesAdmin(t *testing.T) {
	app, store := buildApp(t)
	login(t, store, "mijoz@dorixona.uz", "mijoz123")

	resp := get(t, app, "/admin")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/unauthorized", resp.Header.Get("Location"))
}

func TestAdmin_BlockedFromCustomerRoutes(t *testing.T) {
	app, store := buildApp(t)
	login(t, store, "pharmacy@dorixona.uz", "pharmacy123")

	resp := get(t, app, "/customer/medicines")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/unauthorized", resp.Header.Get("Location"))
}

func TestAdmin_DashboardVariantByRole(t *testing.T) {
	app, store := buildApp(t)

	login(t, store, "pharmacy@dorixona.uz", "pharmacy123")
	resp := get(t, app, "/admin")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"dashboard":"pharmacy_admin"`)

	login(t, store, "admin@dorixona.uz", "admin123")
	resp = get(t, app, "/admin")
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"dashboard":"admin"`)
}

func TestRootRedirect_ByMode(t *testing.T) {
	app, store := buildApp(t)

	resp := get(t, app, "/")
	resp.Body.Close()
	assert.Equal(t, "/customer", resp.Header.Get("Location"))

	login(t, store, "admin@dorixona.uz", "admin123")
	resp = get(t, app, "/")
	resp.Body.Close()
	assert.Equal(t, "/admin", resp.Header.Get("Location"))

	require.NoError(t, store.Logout(context.Background()))
	resp = get(t, app, "/")
	resp.Body.Close()
	assert.Equal(t, "/customer", resp.Header.Get("Location"), "logging out must land back in public mode")
}

func TestUnknownPath_NotFoundPage(t *testing.T) {
	app, _ := buildApp(t)

	resp := get(t, app, "/no/such/page")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

// ── auth endpoints ───────────────────────────────────────────────────────────

func TestAuthLogin_Endpoint(t *testing.T) {
	app, _ := buildApp(t)

	resp := postJSON(t, app, "/auth/login", map[string]string{"email": "admin@dorixona.uz", "password": "admin123"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Redirect string `json:"redirect"`
		User     struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "/admin", out.Redirect)
	assert.Equal(t, "super_admin", out.User.Role)
}

func TestAuthLogin_BadCredentials(t *testing.T) {
	app, _ := buildApp(t)

	resp := postJSON(t, app, "/auth/login", map[string]string{"email": "admin@dorixona.uz", "password": "nope"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_CREDENTIALS")
}

func TestAuthRegister_Endpoint(t *testing.T) {
	app, store := buildApp(t)

	resp := postJSON(t, app, "/auth/register", map[string]string{
		"name": "A", "email": "a@b.com", "phone": "+998900000000", "password": "x",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	st := store.Snapshot()
	require.True(t, st.Authenticated())
	assert.Equal(t, "a@b.com", st.Identity.Email)
}

func TestAuthSession_ReflectsState(t *testing.T) {
	app, store := buildApp(t)

	resp := get(t, app, "/auth/session")
	var out struct {
		Authenticated bool   `json:"authenticated"`
		Mode          string `json:"mode"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	assert.False(t, out.Authenticated)
	assert.Equal(t, "public", out.Mode)

	login(t, store, "mijoz@dorixona.uz", "mijoz123")
	resp = get(t, app, "/auth/session")
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	assert.True(t, out.Authenticated)
	assert.Equal(t, "customer", out.Mode)
}

func TestAuthLogout_Endpoint(t *testing.T) {
	app, store := buildApp(t)
	login(t, store, "mijoz@dorixona.uz", "mijoz123")

	resp := postJSON(t, app, "/auth/logout", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, store.Snapshot().Authenticated())

	// Logged out again: admin routes bounce to auth.
	resp = get(t, app, "/admin")
	resp.Body.Close()
	assert.Equal(t, "/auth", resp.Header.Get("Location"))
}

// ── admin screens ────────────────────────────────────────────────────────────

func TestAdminNotificationDetail(t *testing.T) {
	app, store := buildApp(t)
	login(t, store, "admin@dorixona.uz", "admin123")

	resp := get(t, app, "/admin/notifications/1")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Kam qolgan mahsulot")

	resp = get(t, app, "/admin/notifications/99")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminNotificationsList(t *testing.T) {
	app, store := buildApp(t)
	login(t, store, "admin@dorixona.uz", "admin123")

	resp := get(t, app, "/admin/notifications")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Total         int `json:"total"`
		Notifications []struct {
			Title string `json:"title"`
		} `json:"notifications"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 4, out.Total)
	assert.Equal(t, "Kam qolgan mahsulot", out.Notifications[0].Title)
}

func TestAdminSales_CompleteFlow(t *testing.T) {
	app, store := buildApp(t)
	login(t, store, "pharmacy@dorixona.uz", "pharmacy123")

	// Empty desk: nothing completed yet.
	resp := get(t, app, "/admin/sales")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"totalSales":0`)

	resp = postJSON(t, app, "/admin/sales/items", map[string]any{"medicineId": "1", "quantity": 2})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/admin/sales/complete", map[string]string{"customerName": "Mijoz", "customerPhone": "+998901234567"})
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(body), `"totalAmount":"10000"`)
	assert.Contains(t, string(body), `"customerName":"Mijoz"`)

	// The completed sale lands in the history and the draft is empty.
	resp = get(t, app, "/admin/sales")
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), `"totalSales":1`)
	assert.Contains(t, string(body), `"items":[]`)

	// Counter sales also feed the pharmacy dashboard numbers.
	resp = get(t, app, "/admin")
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), `"totalSales":1`)
	assert.Contains(t, string(body), `"salesRevenue":"10000"`)
}

func TestAdminSales_EmptyCompleteRejected(t *testing.T) {
	app, store := buildApp(t)
	login(t, store, "pharmacy@dorixona.uz", "pharmacy123")

	resp := postJSON(t, app, "/admin/sales/complete", map[string]string{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminOrderStatusUpdate(t *testing.T) {
	app, store := buildApp(t)
	login(t, store, "admin@dorixona.uz", "admin123")

	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/ORD001/status", bytes.NewReader([]byte(`{"status":"processing"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"processing"`)

	req = httptest.NewRequest(http.MethodPatch, "/admin/orders/ORD001/status", bytes.NewReader([]byte(`{"status":"lost"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── cart flow ─────────────────────────────────────────────────────────────────

func TestCartCheckout_RequiresIdentity(t *testing.T) {
	app, _ := buildApp(t)

	resp := postJSON(t, app, "/customer/cart/items", map[string]any{"medicineId": "1", "quantity": 2})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Anonymous checkout bounces to the auth screen.
	resp = postJSON(t, app, "/customer/cart/checkout", map[string]string{"shippingAddress": "Toshkent"})
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth", resp.Header.Get("Location"))
}

func TestCartCheckout_AsCustomer(t *testing.T) {
	app, store := buildApp(t)
	login(t, store, "mijoz@dorixona.uz", "mijoz123")

	resp := postJSON(t, app, "/customer/cart/items", map[string]any{"medicineId": "1", "quantity": 2})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/customer/cart/checkout", map[string]string{"shippingAddress": "Toshkent, Yunusobod"})
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"new"`)
	assert.Contains(t, string(body), `"totalAmount":"10000"`)

	// The new order shows up on the customer orders screen.
	resp = get(t, app, "/customer/orders")
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "Mijoz User")
}
