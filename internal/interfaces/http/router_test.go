package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zakayo-api/internal/application/auth"
	"github.com/jhoicas/zakayo-api/internal/application/billing"
	"github.com/jhoicas/zakayo-api/internal/application/export"
	"github.com/jhoicas/zakayo-api/internal/application/usecase"
	"github.com/jhoicas/zakayo-api/internal/application/validation"
	"github.com/jhoicas/zakayo-api/internal/application/workspace"
	"github.com/jhoicas/zakayo-api/internal/infrastructure/memory"
	"github.com/jhoicas/zakayo-api/internal/infrastructure/messaging"
	"github.com/jhoicas/zakayo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/zakayo-api/internal/infrastructure/session"
	apphttp "github.com/jhoicas/zakayo-api/internal/interfaces/http"
	"github.com/jhoicas/zakayo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testPassword  = "password123"
)

// buildApp arma la API completa sobre los datos sembrados en memoria.
func buildApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := memory.Seed(testPassword)
	require.NoError(t, err)

	v := validation.New()
	log := logger.Nop()
	authUC := auth.NewAuthUseCase(store.Users, store.Subsidiaries, session.NewMemoryStore(), auth.Config{
		JWTSecret:  testJWTSecret,
		Issuer:     "zakayo-test",
		ExpMinutes: 60,
		SessionKey: "zakayo_session",
		SessionTTL: time.Hour,
	})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:         authUC,
		SubsidiaryUC:   usecase.NewSubsidiaryUseCase(store.Subsidiaries),
		UserUC:         usecase.NewUserUseCase(store.Users),
		CustomerUC:     usecase.NewCustomerUseCase(store.Customers, store.Subsidiaries, v),
		OrderUC:        usecase.NewOrderUseCase(store.Orders, store.Subsidiaries, v),
		InvoiceUC:      billing.NewInvoiceUseCase(store.Invoices, store.Subsidiaries, v, 18),
		DeliveryNoteUC: billing.NewDeliveryNoteUseCase(store.DeliveryNotes, store.Subsidiaries, v),
		DocumentUC: billing.NewDocumentUseCase(store.Invoices, store.DeliveryNotes, store.Subsidiaries,
			pdf.NewMarotoPDFGenerator("TSh"), messaging.NewWhatsAppLinker(), "TSh", log),
		WorkspaceUC: workspace.NewWorkspaceUseCase(store.Customers, store.Orders, store.Invoices,
			store.DeliveryNotes, store.Subsidiaries),
		ExportUC: export.NewExportUseCase(store.Customers, store.Orders, store.Invoices, store.DeliveryNotes,
			v, time.Hour, time.Hour, log),
		Status: apphttp.StatusInfo{Environment: "test", DeployContext: "unknown"},
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func loginAs(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

type listBody struct {
	Items []struct {
		ID           int    `json:"id"`
		SubsidiaryID int    `json:"subsidiary_id"`
		OrderNumber  string `json:"order_number"`
	} `json:"items"`
	Total int    `json:"total"`
	Empty bool   `json:"empty"`
	Scope string `json:"scope"`
}

func subsidiariesIn(b listBody) []int {
	out := []int{}
	for _, it := range b.Items {
		out = append(out, it.SubsidiaryID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth y sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "owner@zakayo.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{"email": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMe_YLogout(t *testing.T) {
	app := buildApp(t)
	token := loginAs(t, app, "john@agrovet.com")

	resp := do(t, app, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
		Scope      string `json:"scope"`
		ScopeLabel string `json:"scope_label"`
		CanPivot   bool   `json:"can_pivot"`
	}
	decode(t, resp, &me)
	assert.Equal(t, "John Manager", me.User.Name)
	assert.Equal(t, "1", me.Scope)
	assert.Equal(t, "Zakayo Agrovet", me.ScopeLabel)
	assert.False(t, me.CanPivot)

	resp = do(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRutasProtegidas_SinToken(t *testing.T) {
	app := buildApp(t)
	for _, path := range []string{"/api/me", "/api/orders", "/api/invoices/1", "/api/overview"} {
		resp := do(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance por subsidiaria
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_ManagerSoloSuSubsidiaria(t *testing.T) {
	app := buildApp(t)
	token := loginAs(t, app, "john@agrovet.com")

	resp := do(t, app, http.MethodGet, "/api/orders?subsidiary=3", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body listBody
	decode(t, resp, &body)
	assert.Equal(t, []int{1}, subsidiariesIn(body))
	assert.Equal(t, "1", body.Scope)
}

func TestOrders_OwnerTodasYPivote(t *testing.T) {
	app := buildApp(t)
	token := loginAs(t, app, "owner@zakayo.com")

	var body listBody
	decode(t, do(t, app, http.MethodGet, "/api/orders", token, nil), &body)
	assert.Equal(t, []int{1, 2, 3, 4}, subsidiariesIn(body))
	assert.Equal(t, "all", body.Scope)

	resp := do(t, app, http.MethodPut, "/api/scope", token, map[string]string{"subsidiary": "3"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, path := range []string{"/api/customers", "/api/orders", "/api/invoices", "/api/delivery-notes"} {
		var got listBody
		decode(t, do(t, app, http.MethodGet, path, token, nil), &got)
		assert.Equal(t, []int{3}, subsidiariesIn(got), path)
	}

	// El parámetro explícito tiene prioridad sobre el alcance guardado.
	decode(t, do(t, app, http.MethodGet, "/api/orders?subsidiary=all", token, nil), &body)
	assert.Len(t, body.Items, 4)
}

func TestSetScope_ErroresHTTP(t *testing.T) {
	app := buildApp(t)

	manager := loginAs(t, app, "john@agrovet.com")
	resp := do(t, app, http.MethodPut, "/api/scope", manager, map[string]string{"subsidiary": "2"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	owner := loginAs(t, app, "owner@zakayo.com")
	resp = do(t, app, http.MethodPut, "/api/scope", owner, map[string]string{"subsidiary": "9"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodPut, "/api/scope", owner, map[string]string{"subsidiary": "abc"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestList_BusquedaYAlcanceInvalido(t *testing.T) {
	app := buildApp(t)
	token := loginAs(t, app, "owner@zakayo.com")

	var body listBody
	decode(t, do(t, app, http.MethodGet, "/api/orders?q=HASSAN", token, nil), &body)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "ORD-2024-003", body.Items[0].OrderNumber)

	decode(t, do(t, app, http.MethodGet, "/api/orders?q=nobody", token, nil), &body)
	assert.True(t, body.Empty)
	assert.NotNil(t, body.Items)

	resp := do(t, app, http.MethodGet, "/api/orders?subsidiary=x", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUsers_SoloOwner(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodGet, "/api/users", loginAs(t, app, "mary.sales@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/users?role=Staff", loginAs(t, app, "owner@zakayo.com"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var users []map[string]any
	decode(t, resp, &users)
	assert.Len(t, users, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas y documentos
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoices_DetalleYPermisos(t *testing.T) {
	app := buildApp(t)
	token := loginAs(t, app, "john@agrovet.com")

	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/invoices/1", token, nil).StatusCode)
	assert.Equal(t, http.StatusForbidden, do(t, app, http.MethodGet, "/api/invoices/2", token, nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodGet, "/api/invoices/99", token, nil).StatusCode)
	assert.Equal(t, http.StatusBadRequest, do(t, app, http.MethodGet, "/api/invoices/abc", token, nil).StatusCode)
}

func TestInvoices_CreateValidacion(t *testing.T) {
	app := buildApp(t)
	token := loginAs(t, app, "john@agrovet.com")

	resp := do(t, app, http.MethodPost, "/api/invoices", token, map[string]any{
		"customer_name": "Mwalimu John Kasonga",
		"subsidiary_id": 1,
		"items":         []any{},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody struct {
		Code   string `json:"code"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	decode(t, resp, &errBody)
	assert.Equal(t, "VALIDATION", errBody.Code)
	fields := []string{}
	for _, f := range errBody.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "customer_phone")
	assert.Contains(t, fields, "items")
}

func TestInvoices_CreateYCambioDeEstado(t *testing.T) {
	app := buildApp(t)
	token := loginAs(t, app, "john@agrovet.com")

	resp := do(t, app, http.MethodPost, "/api/invoices", token, map[string]any{
		"customer_name":  "Mwalimu John Kasonga",
		"customer_phone": "+255712345678",
		"customer_email": "john.kasonga@gmail.com",
		"subsidiary_id":  1,
		"issue_date":     "2024-03-01",
		"due_date":       "2024-03-31",
		"items":          []map[string]any{{"description": "Fertilizer A (50kg)", "quantity": 10, "unit_price": 45000}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var inv struct {
		ID     int    `json:"id"`
		Total  string `json:"total"`
		Status string `json:"status"`
	}
	decode(t, resp, &inv)
	assert.Equal(t, "531000", inv.Total)
	assert.Equal(t, "Draft", inv.Status)

	resp = do(t, app, http.MethodPatch, "/api/invoices/"+itoa(inv.ID)+"/status", token, map[string]string{"status": "Sent"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &inv)
	assert.Equal(t, "Sent", inv.Status)
}

func TestInvoices_PDFYShare(t *testing.T) {
	app := buildApp(t)
	token := loginAs(t, app, "owner@zakayo.com")

	resp := do(t, app, http.MethodGet, "/api/invoices/1/pdf", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "INV-2024-001.pdf")
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp = do(t, app, http.MethodGet, "/api/delivery-notes/2/share", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var share struct {
		URL string `json:"url"`
	}
	decode(t, resp, &share)
	assert.True(t, strings.HasPrefix(share.URL, "https://wa.me/255723456789?text="))
}

func TestDeliveryNotes_PDFDeOtraSubsidiaria(t *testing.T) {
	app := buildApp(t)
	token := loginAs(t, app, "charlie.brown@example.com")

	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/delivery-notes/3/pdf", token, nil).StatusCode)
	assert.Equal(t, http.StatusForbidden, do(t, app, http.MethodGet, "/api/delivery-notes/1/pdf", token, nil).StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablero, exportaciones y estado
// ──────────────────────────────────────────────────────────────────────────────

func TestOverviewYSearch(t *testing.T) {
	app := buildApp(t)
	token := loginAs(t, app, "owner@zakayo.com")

	var overview struct {
		ScopeLabel string `json:"scope_label"`
		Invoices   int    `json:"invoices"`
	}
	decode(t, do(t, app, http.MethodGet, "/api/overview?subsidiary=2", token, nil), &overview)
	assert.Equal(t, "Zakayo Lubricants", overview.ScopeLabel)
	assert.Equal(t, 1, overview.Invoices)

	var search struct {
		Hits []struct {
			Type string `json:"type"`
		} `json:"hits"`
	}
	decode(t, do(t, app, http.MethodGet, "/api/search?q=hassan", token, nil), &search)
	assert.Len(t, search.Hits, 4)
}

func TestExports(t *testing.T) {
	app := buildApp(t)
	token := loginAs(t, app, "mary.sales@example.com")

	resp := do(t, app, http.MethodGet, "/api/exports/customers.csv", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.Len(t, lines, 2)

	resp = do(t, app, http.MethodGet, "/api/exports/payroll.csv", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/exports", token, map[string]string{"dataset": "orders", "format": "xlsx"})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	var job struct {
		ID    string `json:"id"`
		State string `json:"state"`
	}
	decode(t, resp, &job)
	assert.Equal(t, "started", job.State)

	resp = do(t, app, http.MethodGet, "/api/exports/"+job.ID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStatusEndpoints(t *testing.T) {
	app := buildApp(t)

	var env struct {
		Status         string `json:"status"`
		DeploymentInfo struct {
			Environment          string `json:"environment"`
			IsNetlifyEnvironment bool   `json:"isNetlifyEnvironment"`
			Timestamp            string `json:"timestamp"`
		} `json:"deploymentInfo"`
		Message string `json:"message"`
	}
	decode(t, do(t, app, http.MethodGet, "/api/status/environment", "", nil), &env)
	assert.Equal(t, "Active", env.Status)
	assert.Equal(t, "test", env.DeploymentInfo.Environment)
	assert.False(t, env.DeploymentInfo.IsNetlifyEnvironment)
	assert.NotEmpty(t, env.DeploymentInfo.Timestamp)
	assert.Equal(t, "Zakayo Holdings system is operational", env.Message)

	var hello map[string]string
	decode(t, do(t, app, http.MethodGet, "/api/status/hello", "", nil), &hello)
	assert.Equal(t, "Hello from Zakayo Holdings!", hello["message"])

	var info map[string]string
	decode(t, do(t, app, http.MethodGet, "/api/status/system-info", "", nil), &info)
	assert.Equal(t, "1.0.0", info["version"])
}

func TestRequestLogger_AsignaRequestID(t *testing.T) {
	app := buildApp(t)
	resp := do(t, app, http.MethodGet, "/api/status/hello", "", nil)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}
