package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bunshock/hipbank/internal/api/shared"
	"github.com/bunshock/hipbank/internal/config"
	"github.com/bunshock/hipbank/internal/service"
)

// AccountHandler serves the accounts API.
type AccountHandler struct {
	accountService service.AccountService
	contactInfo    config.ContactConfig
	logger         *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(accountService service.AccountService, contactInfo config.ContactConfig, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		contactInfo:    contactInfo,
		logger:         logger.With(slog.String("component", "account_handler")),
	}
}

// RegisterRoutes mounts the accounts API under /api/accounts.
func (h *AccountHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/accounts", func(r chi.Router) {
		r.Post("/create", h.CreateAccount)
		r.Get("/fetch", h.FetchAllAccounts)
		r.Get("/fetch/{mobileNumber}", h.FetchAccount)
		r.Put("/update/{mobileNumber}", h.UpdateAccount)
		r.Delete("/delete/{mobileNumber}", h.DeleteAccount)
		r.Get("/contact-info", h.ContactInfo)
	})
}

// CreateAccount handles POST /api/accounts/create.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CustomerCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, map[string]string{"request": "malformed request body"})
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationErrors(w, r, shared.ValidationMessages(err))
		return
	}

	details, err := h.accountService.CreateAccount(r.Context(), actorFrom(r), service.CustomerInput{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusCreated,
		fmt.Sprintf(shared.MessageCreated, "Account"),
		newCustomerAccountDetailsResponse(*details))
}

// FetchAllAccounts handles GET /api/accounts/fetch.
func (h *AccountHandler) FetchAllAccounts(w http.ResponseWriter, r *http.Request) {
	details, err := h.accountService.FetchAllAccountDetails(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	payload := make([]CustomerAccountDetailsResponse, 0, len(details))
	for _, d := range details {
		payload = append(payload, newCustomerAccountDetailsResponse(d))
	}
	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK, "Fetched all account details"),
		payload)
}

// FetchAccount handles GET /api/accounts/fetch/{mobileNumber}.
func (h *AccountHandler) FetchAccount(w http.ResponseWriter, r *http.Request) {
	mobileNumber, ok := h.pathMobileNumber(w, r)
	if !ok {
		return
	}

	details, err := h.accountService.FetchAccountDetails(r.Context(), mobileNumber)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK,
			"Fetched account details for customer with mobile number: "+mobileNumber),
		newCustomerAccountDetailsResponse(*details))
}

// UpdateAccount handles PUT /api/accounts/update/{mobileNumber}.
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	mobileNumber, ok := h.pathMobileNumber(w, r)
	if !ok {
		return
	}

	var req CustomerAccountUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, map[string]string{"request": "malformed request body"})
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationErrors(w, r, shared.ValidationMessages(err))
		return
	}
	update, err := req.toServiceUpdate()
	if err != nil {
		shared.RespondWithValidationErrors(w, r, map[string]string{"accountType": "Invalid account type"})
		return
	}

	details, err := h.accountService.UpdateAccount(r.Context(), actorFrom(r), mobileNumber, update)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK,
			"Updated account details for customer with mobile number: "+mobileNumber),
		newCustomerAccountDetailsResponse(*details))
}

// DeleteAccount handles DELETE /api/accounts/delete/{mobileNumber}.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	mobileNumber, ok := h.pathMobileNumber(w, r)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), mobileNumber); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK,
			"Deleted account details for customer with mobile number: "+mobileNumber),
		nil)
}

// ContactInfo handles GET /api/accounts/contact-info. It returns the
// contact details straight from config, without the success envelope.
func (h *AccountHandler) ContactInfo(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, http.StatusOK, ContactInfoResponse{
		Message:        h.contactInfo.Message,
		ContactDetails: h.contactInfo.ContactDetails,
		OnCallSupport:  h.contactInfo.OnCallSupport,
	})
}

func (h *AccountHandler) pathMobileNumber(w http.ResponseWriter, r *http.Request) (string, bool) {
	mobileNumber := chi.URLParam(r, "mobileNumber")
	if !shared.IsMobileNumber(mobileNumber) {
		shared.RespondWithValidationErrors(w, r, map[string]string{
			"mobileNumber": "Invalid mobile number format",
		})
		return "", false
	}
	return mobileNumber, true
}
