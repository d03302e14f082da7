package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bunshock/hipbank/internal/api/shared"
	"github.com/bunshock/hipbank/internal/domain"
	"github.com/bunshock/hipbank/internal/service"
)

// LoanHandler serves the loans API.
type LoanHandler struct {
	loanService service.LoanService
	logger      *slog.Logger
}

// NewLoanHandler creates a LoanHandler.
func NewLoanHandler(loanService service.LoanService, logger *slog.Logger) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		logger:      logger.With(slog.String("component", "loan_handler")),
	}
}

// RegisterRoutes mounts the loans API under /api/loans.
func (h *LoanHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/loans", func(r chi.Router) {
		r.Post("/create", h.CreateLoan)
		r.Get("/fetch", h.FetchAllLoans)
		r.Get("/fetch/{loanNumber}", h.FetchLoan)
		r.Put("/update/{loanNumber}", h.UpdateLoan)
		r.Delete("/delete/{loanNumber}", h.DeleteLoan)
	})
}

// CreateLoan handles POST /api/loans/create.
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req LoanCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, map[string]string{"request": "malformed request body"})
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationErrors(w, r, shared.ValidationMessages(err))
		return
	}

	// The literal passed the loantype validator, so this cannot fail.
	loanType, _ := domain.ParseLoanType(req.LoanType)

	loan, err := h.loanService.CreateLoan(r.Context(), actorFrom(r), service.LoanInput{
		MobileNumber: req.MobileNumber,
		LoanType:     loanType,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusCreated,
		fmt.Sprintf(shared.MessageCreated, "Loan"),
		newLoanResponse(*loan))
}

// FetchAllLoans handles GET /api/loans/fetch.
func (h *LoanHandler) FetchAllLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanService.FetchAllLoans(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	payload := make([]LoanResponse, 0, len(loans))
	for _, loan := range loans {
		payload = append(payload, newLoanResponse(loan))
	}
	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK, "Fetched all loan details"),
		payload)
}

// FetchLoan handles GET /api/loans/fetch/{loanNumber}.
func (h *LoanHandler) FetchLoan(w http.ResponseWriter, r *http.Request) {
	loanNumber, ok := h.pathLoanNumber(w, r)
	if !ok {
		return
	}

	loan, err := h.loanService.FetchLoan(r.Context(), loanNumber)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK, "Fetched loan details for loan number "+loanNumber),
		newLoanResponse(*loan))
}

// UpdateLoan handles PUT /api/loans/update/{loanNumber}.
func (h *LoanHandler) UpdateLoan(w http.ResponseWriter, r *http.Request) {
	loanNumber, ok := h.pathLoanNumber(w, r)
	if !ok {
		return
	}

	var req LoanUpdateRequest
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
		shared.RespondWithValidationErrors(w, r, map[string]string{"loanType": "Invalid loan type"})
		return
	}

	loan, err := h.loanService.UpdateLoan(r.Context(), actorFrom(r), loanNumber, update)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK, "Updated loan details for loan number "+loanNumber),
		newLoanResponse(*loan))
}

// DeleteLoan handles DELETE /api/loans/delete/{loanNumber}.
func (h *LoanHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	loanNumber, ok := h.pathLoanNumber(w, r)
	if !ok {
		return
	}

	if err := h.loanService.DeleteLoan(r.Context(), loanNumber); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK, "Deleted loan details for loan number "+loanNumber),
		nil)
}

func (h *LoanHandler) pathLoanNumber(w http.ResponseWriter, r *http.Request) (string, bool) {
	loanNumber := chi.URLParam(r, "loanNumber")
	if !shared.IsTenDigits(loanNumber) {
		shared.RespondWithValidationErrors(w, r, map[string]string{
			"loanNumber": "Loan number must be exactly 10 digits",
		})
		return "", false
	}
	return loanNumber, true
}
