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

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunshock/hipbank/internal/config"
	"github.com/bunshock/hipbank/internal/domain"
	"github.com/bunshock/hipbank/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serveRequest routes the request through a fresh chi router so URL
// parameters resolve the same way they do in the real server.
func serveRequest(register func(chi.Router), req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	register(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

type stubAccountService struct {
	details    *service.CustomerAccountDetails
	allDetails []service.CustomerAccountDetails
	err        error

	lastActor  string
	lastMobile string
	lastInput  service.CustomerInput
	lastUpdate service.CustomerAccountUpdate
	deleted    bool
}

func (s *stubAccountService) CreateAccount(_ context.Context, actor string, in service.CustomerInput) (*service.CustomerAccountDetails, error) {
	s.lastActor = actor
	s.lastInput = in
	return s.details, s.err
}

func (s *stubAccountService) FetchAccountDetails(_ context.Context, mobileNumber string) (*service.CustomerAccountDetails, error) {
	s.lastMobile = mobileNumber
	return s.details, s.err
}

func (s *stubAccountService) FetchAllAccountDetails(context.Context) ([]service.CustomerAccountDetails, error) {
	return s.allDetails, s.err
}

func (s *stubAccountService) UpdateAccount(_ context.Context, actor, mobileNumber string, in service.CustomerAccountUpdate) (*service.CustomerAccountDetails, error) {
	s.lastActor = actor
	s.lastMobile = mobileNumber
	s.lastUpdate = in
	return s.details, s.err
}

func (s *stubAccountService) DeleteAccount(_ context.Context, mobileNumber string) error {
	s.lastMobile = mobileNumber
	s.deleted = true
	return s.err
}

func sampleAccountDetails() *service.CustomerAccountDetails {
	return &service.CustomerAccountDetails{
		Customer: domain.Customer{
			CustomerID:   7,
			Name:         "Alice Smith",
			Email:        "alice@example.com",
			MobileNumber: "4354437687",
		},
		Account: domain.Account{
			AccountNumber: "1234567890",
			CustomerID:    7,
			AccountType:   domain.AccountTypeSavings,
			BranchAddress: "123 Main Street, New York",
		},
	}
}

func newAccountHandlerTest(svc *stubAccountService) *AccountHandler {
	return NewAccountHandler(svc, config.ContactConfig{
		Message:        "Welcome to hipbank accounts related docker APIs",
		ContactDetails: map[string]string{"name": "Reine Aishima", "email": "reine@hipbank.com"},
		OnCallSupport:  []string{"(555) 555-1234", "(555) 523-1345"},
	}, testLogger())
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("creates account", func(t *testing.T) {
		svc := &stubAccountService{details: sampleAccountDetails()}
		h := newAccountHandlerTest(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/accounts/create",
			strings.NewReader(`{"name":"Alice Smith","email":"alice@example.com","mobileNumber":"4354437687"}`))
		req.Header.Set("X-Actor", "teller-7")
		rec := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Account created successfully", body["message"])

		data := body["data"].(map[string]any)
		assert.Equal(t, "Alice Smith", data["name"])
		account := data["account"].(map[string]any)
		assert.Equal(t, "1234567890", account["accountNumber"])
		assert.Equal(t, "SAVINGS", account["accountType"])

		assert.Equal(t, "teller-7", svc.lastActor)
		assert.Equal(t, "4354437687", svc.lastInput.MobileNumber)
	})

	t.Run("defaults the actor when no header is sent", func(t *testing.T) {
		svc := &stubAccountService{details: sampleAccountDetails()}
		h := newAccountHandlerTest(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/accounts/create",
			strings.NewReader(`{"name":"Alice Smith","email":"alice@example.com","mobileNumber":"4354437687"}`))
		serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, "anonymous", svc.lastActor)
	})

	t.Run("rejects an invalid body field by field", func(t *testing.T) {
		svc := &stubAccountService{}
		h := newAccountHandlerTest(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/accounts/create", strings.NewReader(`{}`))
		rec := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "uri=/api/accounts/create", body["apiPath"])
		assert.Equal(t, map[string]any{
			"name":         "Name cannot be null or empty",
			"email":        "Email address cannot be null or empty",
			"mobileNumber": "Mobile number cannot be null or empty",
		}, body["errors"])
		assert.Empty(t, svc.lastActor)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		h := newAccountHandlerTest(&stubAccountService{})

		req := httptest.NewRequest(http.MethodPost, "/api/accounts/create", strings.NewReader(`{"name":`))
		rec := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, map[string]any{"request": "malformed request body"}, body["errors"])
	})

	t.Run("maps a duplicate mobile number to 409", func(t *testing.T) {
		svc := &stubAccountService{err: &service.AlreadyExistsError{
			Message: "Customer with mobile number '4354437687' already exists",
		}}
		h := newAccountHandlerTest(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/accounts/create",
			strings.NewReader(`{"name":"Alice Smith","email":"alice@example.com","mobileNumber":"4354437687"}`))
		rec := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Customer with mobile number '4354437687' already exists", body["errorMessage"])
	})
}

func TestAccountHandler_FetchAllAccounts(t *testing.T) {
	svc := &stubAccountService{allDetails: []service.CustomerAccountDetails{*sampleAccountDetails()}}
	h := newAccountHandlerTest(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/fetch", nil)
	rec := serveRequest(h.RegisterRoutes, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Successful operation: Fetched all account details", body["message"])
	assert.Len(t, body["data"], 1)
}

func TestAccountHandler_FetchAccount(t *testing.T) {
	t.Run("fetches by mobile number", func(t *testing.T) {
		svc := &stubAccountService{details: sampleAccountDetails()}
		h := newAccountHandlerTest(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/accounts/fetch/4354437687", nil)
		rec := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t,
			"Successful operation: Fetched account details for customer with mobile number: 4354437687",
			body["message"])
		assert.Equal(t, "4354437687", svc.lastMobile)
	})

	t.Run("unknown customer is 404", func(t *testing.T) {
		svc := &stubAccountService{err: service.NewNotFoundError("Customer", "mobileNumber", "9999999999")}
		h := newAccountHandlerTest(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/accounts/fetch/9999999999", nil)
		rec := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Customer not found with mobileNumber : '9999999999'", body["errorMessage"])
		assert.Equal(t, "uri=/api/accounts/fetch/9999999999", body["apiPath"])
	})

	t.Run("rejects a malformed mobile number in the path", func(t *testing.T) {
		h := newAccountHandlerTest(&stubAccountService{})

		req := httptest.NewRequest(http.MethodGet, "/api/accounts/fetch/not-a-number", nil)
		rec := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, map[string]any{"mobileNumber": "Invalid mobile number format"}, body["errors"])
	})
}

func TestAccountHandler_UpdateAccount(t *testing.T) {
	t.Run("updates the named fields", func(t *testing.T) {
		svc := &stubAccountService{details: sampleAccountDetails()}
		h := newAccountHandlerTest(svc)

		req := httptest.NewRequest(http.MethodPut, "/api/accounts/update/4354437687",
			strings.NewReader(`{"name":"Alice Cooper","account":{"accountType":"Checking"}}`))
		req.Header.Set("X-Actor", "teller-7")
		rec := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t,
			"Successful operation: Updated account details for customer with mobile number: 4354437687",
			body["message"])

		assert.Equal(t, "teller-7", svc.lastActor)
		require.NotNil(t, svc.lastUpdate.Name)
		assert.Equal(t, "Alice Cooper", *svc.lastUpdate.Name)
		require.NotNil(t, svc.lastUpdate.Account)
		require.NotNil(t, svc.lastUpdate.Account.AccountType)
		assert.Equal(t, domain.AccountTypeChecking, *svc.lastUpdate.Account.AccountType)
		assert.Nil(t, svc.lastUpdate.Email)
	})

	t.Run("rejects an unknown account type", func(t *testing.T) {
		h := newAccountHandlerTest(&stubAccountService{})

		req := httptest.NewRequest(http.MethodPut, "/api/accounts/update/4354437687",
			strings.NewReader(`{"account":{"accountType":"Offshore"}}`))
		rec := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, map[string]any{"accountType": "Invalid account type"}, body["errors"])
	})
}

func TestAccountHandler_DeleteAccount(t *testing.T) {
	t.Run("deletes by mobile number", func(t *testing.T) {
		svc := &stubAccountService{}
		h := newAccountHandlerTest(svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/accounts/delete/4354437687", nil)
		rec := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t,
			"Successful operation: Deleted account details for customer with mobile number: 4354437687",
			body["message"])
		assert.NotContains(t, body, "data")
		assert.True(t, svc.deleted)
	})

	t.Run("unknown customer is 404", func(t *testing.T) {
		svc := &stubAccountService{err: service.NewNotFoundError("Customer", "mobileNumber", "9999999999")}
		h := newAccountHandlerTest(svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/accounts/delete/9999999999", nil)
		rec := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAccountHandler_ContactInfo(t *testing.T) {
	h := newAccountHandlerTest(&stubAccountService{})

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/contact-info", nil)
	rec := serveRequest(h.RegisterRoutes, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	// Contact info is served without the success envelope.
	assert.NotContains(t, body, "statusCode")
	assert.Equal(t, "Welcome to hipbank accounts related docker APIs", body["message"])
	assert.Equal(t, map[string]any{"name": "Reine Aishima", "email": "reine@hipbank.com"}, body["contactDetails"])
	assert.Equal(t, []any{"(555) 555-1234", "(555) 523-1345"}, body["onCallSupport"])
}
