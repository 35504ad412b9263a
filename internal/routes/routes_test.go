package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/auth"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/models"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/repository"
)

// Integration tests are opt-in: set DB_TEST=1 and DB_DSN to a Postgres
// instance to run them.
func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	if os.Getenv("DB_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_TEST=1 and DB_DSN to enable")
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Role{}, &models.User{},
		&models.Invoice{}, &models.Expense{}, &models.ChangeLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	tokens := auth.NewTokenService([]byte("integration-test-key"), "iss", "aud")
	RegisterRoutes(r, db, tokens)
	return r, db
}

func performRequest(r http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(raw)
}

type envelope struct {
	StatusCode string          `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      []string        `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %q: %v", rec.Body.String(), err)
	}
	return env
}

// seedUser inserts a user with the given role directly through the
// repository layer.
func seedUser(t *testing.T, db *gorm.DB, email, password, roleName string) {
	t.Helper()
	users := repository.NewUserRepository(db)
	role, err := users.EnsureRole(roleName)
	if err != nil {
		t.Fatal(err)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	user := models.User{
		ID:           uuid.New(),
		Username:     email,
		Email:        email,
		PasswordHash: hash,
		Roles:        []models.Role{*role},
	}
	if err := users.Create(&user); err != nil {
		t.Fatal(err)
	}
}

func login(t *testing.T, r http.Handler, email, password string) string {
	t.Helper()
	rec := performRequest(r, http.MethodPost, "/api/Auth/Login",
		jsonBody(t, map[string]string{"username": email, "password": password}), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status=%d body=%s", email, rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["token"] == "" {
		t.Fatal("empty token")
	}
	return resp["token"]
}

func TestServerFlow(t *testing.T) {
	r, db := setupTestServer(t)

	run := uuid.NewString()[:8]
	adminEmail := fmt.Sprintf("admin-%s@test.local", run)
	userEmail := fmt.Sprintf("user-%s@test.local", run)
	seedUser(t, db, adminEmail, "Admin@123", models.RoleAdmin)

	// Register + login a regular user.
	rec := performRequest(r, http.MethodPost, "/api/Auth/Register",
		jsonBody(t, map[string]string{"email": userEmail, "password": "User@123"}), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("register: status=%d body=%s", rec.Code, rec.Body.String())
	}
	userToken := login(t, r, userEmail, "User@123")
	adminToken := login(t, r, adminEmail, "Admin@123")

	// Unauthenticated requests are rejected outright.
	if rec := performRequest(r, http.MethodGet, "/api/v1/Invoice/GetInvoice", nil, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated list: status=%d", rec.Code)
	}

	// Non-admin create is refused inside the envelope.
	invoicePayload := func(title string) map[string]any {
		return map[string]any{
			"title":        title,
			"amount":       150.25,
			"customerName": "Acme Ltd",
			"invoiceDate":  time.Now().UTC().Format(time.RFC3339),
			"remarks":      "Pending",
		}
	}
	rec = performRequest(r, http.MethodPost, "/api/v1/Invoice/AddInvoice",
		jsonBody(t, invoicePayload("denied-"+run)), userToken)
	if env := decodeEnvelope(t, rec); env.StatusCode != "401" {
		t.Errorf("non-admin create: statusCode=%s", env.StatusCode)
	}

	// Admin creates two invoices; numbers must be consecutive.
	titleA, titleB := "invoice-a-"+run, "invoice-b-"+run
	for _, title := range []string{titleA, titleB} {
		rec = performRequest(r, http.MethodPost, "/api/v1/Invoice/AddInvoice",
			jsonBody(t, invoicePayload(title)), adminToken)
		if env := decodeEnvelope(t, rec); env.StatusCode != "200" {
			t.Fatalf("create %s: %s %s", title, env.StatusCode, env.Message)
		}
	}

	rec = performRequest(r, http.MethodGet, "/api/v1/Invoice/GetInvoice", nil, adminToken)
	env := decodeEnvelope(t, rec)
	if env.StatusCode != "200" {
		t.Fatalf("list: statusCode=%s", env.StatusCode)
	}
	var invoices []struct {
		ID            uuid.UUID `json:"id"`
		Title         string    `json:"title"`
		InvoiceNumber string    `json:"invoiceNumber"`
	}
	if err := json.Unmarshal(env.Data, &invoices); err != nil {
		t.Fatal(err)
	}
	var idA uuid.UUID
	numA, numB := -1, -1
	for _, inv := range invoices {
		switch inv.Title {
		case titleA:
			idA = inv.ID
			numA, _ = strconv.Atoi(inv.InvoiceNumber)
		case titleB:
			numB, _ = strconv.Atoi(inv.InvoiceNumber)
		}
	}
	if numA <= 0 || numB != numA+1 {
		t.Errorf("sequence numbers not consecutive: %d, %d", numA, numB)
	}

	// Duplicate expense title conflicts.
	expensePayload := map[string]any{
		"title":         "expense-" + run,
		"amount":        40.0,
		"expenseDate":   time.Now().UTC().Format(time.RFC3339),
		"category":      "Office",
		"paymentMethod": "Card",
	}
	rec = performRequest(r, http.MethodPost, "/api/v1/Expense/AddExpense", jsonBody(t, expensePayload), adminToken)
	if env := decodeEnvelope(t, rec); env.StatusCode != "200" {
		t.Fatalf("create expense: %s %s", env.StatusCode, env.Message)
	}
	rec = performRequest(r, http.MethodPost, "/api/v1/Expense/AddExpense", jsonBody(t, expensePayload), adminToken)
	if env := decodeEnvelope(t, rec); env.StatusCode != "409" {
		t.Errorf("duplicate expense title: statusCode=%s", env.StatusCode)
	}

	// Negative amounts are rejected for expenses.
	negative := map[string]any{"title": "neg-" + run, "amount": -5.0}
	rec = performRequest(r, http.MethodPost, "/api/v1/Expense/AddExpense", jsonBody(t, negative), adminToken)
	if env := decodeEnvelope(t, rec); env.StatusCode != "400" {
		t.Errorf("negative amount: statusCode=%s", env.StatusCode)
	}

	// Soft delete: reads stop seeing the row, storage keeps it.
	rec = performRequest(r, http.MethodDelete, "/api/v1/Invoice/DeleteInvoice/"+idA.String(), nil, adminToken)
	if env := decodeEnvelope(t, rec); env.StatusCode != "200" {
		t.Fatalf("delete: %s %s", env.StatusCode, env.Message)
	}
	rec = performRequest(r, http.MethodGet, "/api/v1/Invoice/GetInvoiceById/"+idA.String(), nil, adminToken)
	if env := decodeEnvelope(t, rec); env.StatusCode != "404" {
		t.Errorf("deleted invoice by id: statusCode=%s", env.StatusCode)
	}
	stored, err := repository.NewInvoiceRepository(db).GetByID(idA)
	if err != nil {
		t.Fatalf("raw fetch of soft-deleted row: %v", err)
	}
	if !stored.Action.Deleted() || stored.DeletedAt == nil {
		t.Errorf("row not soft-deleted: action=%q", stored.Action)
	}

	// Deleting again reports not found.
	rec = performRequest(r, http.MethodDelete, "/api/v1/Invoice/DeleteInvoice/"+idA.String(), nil, adminToken)
	if env := decodeEnvelope(t, rec); env.StatusCode != "404" {
		t.Errorf("double delete: statusCode=%s", env.StatusCode)
	}

	// CSV export excludes the deleted invoice and keeps the header.
	rec = performRequest(r, http.MethodGet, "/api/v1/Invoice/download-csv", nil, adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("csv: status=%d", rec.Code)
	}
	csv := rec.Body.String()
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if lines[0] != "InvoiceNumber,Title,Amount,CustomerName,InvoiceDate" {
		t.Errorf("csv header = %q", lines[0])
	}
	if strings.Contains(csv, titleA) {
		t.Error("csv contains soft-deleted invoice")
	}
	if !strings.Contains(csv, titleB) {
		t.Error("csv missing active invoice")
	}

	// Dashboard balance identity.
	rec = performRequest(r, http.MethodGet, "/api/Dashboard", nil, userToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard: status=%d body=%s", rec.Code, rec.Body.String())
	}
	var dash struct {
		Stats struct {
			TotalExpenses  float64 `json:"totalExpenses"`
			Revenue        float64 `json:"revenue"`
			MonthlyBalance float64 `json:"monthlyBalance"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &dash); err != nil {
		t.Fatal(err)
	}
	if diff := math.Abs(dash.Stats.MonthlyBalance - (dash.Stats.Revenue - dash.Stats.TotalExpenses)); diff > 1e-6 {
		t.Errorf("monthlyBalance %v != revenue %v - totalExpenses %v",
			dash.Stats.MonthlyBalance, dash.Stats.Revenue, dash.Stats.TotalExpenses)
	}

	// Change log recorded the invoice's create and delete, admin only.
	rec = performRequest(r, http.MethodGet, "/api/v1/ChangeLog/Invoice/"+idA.String(), nil, adminToken)
	env = decodeEnvelope(t, rec)
	if env.StatusCode != "200" {
		t.Fatalf("change log: statusCode=%s", env.StatusCode)
	}
	var entries []models.ChangeLog
	if err := json.Unmarshal(env.Data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) < 2 {
		t.Errorf("expected create+delete audit rows, got %d", len(entries))
	}
	rec = performRequest(r, http.MethodGet, "/api/v1/ChangeLog/Invoice/"+idA.String(), nil, userToken)
	if env := decodeEnvelope(t, rec); env.StatusCode != "401" {
		t.Errorf("non-admin change log: statusCode=%s", env.StatusCode)
	}
}

func TestEmptyListIs404(t *testing.T) {
	r, db := setupTestServer(t)

	// Only meaningful against an empty invoices table; soft-delete
	// everything this test can see first.
	var count int64
	if err := db.Model(&models.Invoice{}).Where("action <> ?", models.ActionDeleted).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count > 0 {
		t.Skip("invoices table not empty; empty-list contract covered elsewhere")
	}

	run := uuid.NewString()[:8]
	email := fmt.Sprintf("admin-empty-%s@test.local", run)
	seedUser(t, db, email, "Admin@123", models.RoleAdmin)
	token := login(t, r, email, "Admin@123")

	rec := performRequest(r, http.MethodGet, "/api/v1/Invoice/GetInvoice", nil, token)
	if env := decodeEnvelope(t, rec); env.StatusCode != "404" || env.Message != "No record found" {
		t.Errorf("empty list: statusCode=%s message=%q", env.StatusCode, env.Message)
	}
}
