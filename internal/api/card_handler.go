package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bunshock/hipbank/internal/api/shared"
	"github.com/bunshock/hipbank/internal/domain"
	"github.com/bunshock/hipbank/internal/service"
)

// CardHandler serves the cards API.
type CardHandler struct {
	cardService service.CardService
	logger      *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(cardService service.CardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardService: cardService,
		logger:      logger.With(slog.String("component", "card_handler")),
	}
}

// RegisterRoutes mounts the cards API under /api/cards.
func (h *CardHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cards", func(r chi.Router) {
		r.Post("/create", h.CreateCard)
		r.Get("/fetch", h.FetchAllCards)
		r.Get("/fetch/{cardNumber}", h.FetchCard)
		r.Put("/update/{cardNumber}", h.UpdateCard)
		r.Delete("/delete/{cardNumber}", h.DeleteCard)
		r.Post("/spend/{cardNumber}", h.SpendMoney)
	})
}

// CreateCard handles POST /api/cards/create.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req CardCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, map[string]string{"request": "malformed request body"})
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationErrors(w, r, shared.ValidationMessages(err))
		return
	}

	// The literal passed the cardtype validator, so this cannot fail.
	cardType, _ := domain.ParseCardType(req.CardType)

	card, err := h.cardService.CreateCard(r.Context(), actorFrom(r), service.CardInput{
		MobileNumber: req.MobileNumber,
		CardType:     cardType,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusCreated,
		fmt.Sprintf(shared.MessageCreated, "Card"),
		newCardResponse(*card))
}

// FetchAllCards handles GET /api/cards/fetch.
func (h *CardHandler) FetchAllCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardService.FetchAllCards(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	payload := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		payload = append(payload, newCardResponse(card))
	}
	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK, "Fetched all card details"),
		payload)
}

// FetchCard handles GET /api/cards/fetch/{cardNumber}.
func (h *CardHandler) FetchCard(w http.ResponseWriter, r *http.Request) {
	cardNumber, ok := h.pathCardNumber(w, r)
	if !ok {
		return
	}

	card, err := h.cardService.FetchCard(r.Context(), cardNumber)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK, "Fetched card details for card number "+cardNumber),
		newCardResponse(*card))
}

// UpdateCard handles PUT /api/cards/update/{cardNumber}.
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	cardNumber, ok := h.pathCardNumber(w, r)
	if !ok {
		return
	}

	var req CardUpdateRequest
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
		shared.RespondWithValidationErrors(w, r, map[string]string{"cardType": "Invalid card type"})
		return
	}

	card, err := h.cardService.UpdateCard(r.Context(), actorFrom(r), cardNumber, update)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK, "Updated card details for card number "+cardNumber),
		newCardResponse(*card))
}

// DeleteCard handles DELETE /api/cards/delete/{cardNumber}.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardNumber, ok := h.pathCardNumber(w, r)
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(r.Context(), cardNumber); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK, "Deleted card details for card number "+cardNumber),
		nil)
}

// SpendMoney handles POST /api/cards/spend/{cardNumber}?amount=x.
func (h *CardHandler) SpendMoney(w http.ResponseWriter, r *http.Request) {
	cardNumber, ok := h.pathCardNumber(w, r)
	if !ok {
		return
	}

	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil {
		shared.RespondWithValidationErrors(w, r, map[string]string{
			"amount": "Amount must be a valid number",
		})
		return
	}
	if amount <= 0 {
		shared.RespondWithValidationErrors(w, r, map[string]string{
			"amount": "Amount must be greater than 0",
		})
		return
	}

	if _, err := h.cardService.SpendMoney(r.Context(), actorFrom(r), cardNumber, amount); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, http.StatusOK,
		fmt.Sprintf(shared.MessageOperationOK, "Money spent successfully for card number "+cardNumber),
		nil)
}

func (h *CardHandler) pathCardNumber(w http.ResponseWriter, r *http.Request) (string, bool) {
	cardNumber := chi.URLParam(r, "cardNumber")
	if !shared.IsTenDigits(cardNumber) {
		shared.RespondWithValidationErrors(w, r, map[string]string{
			"cardNumber": "Card number must be exactly 10 digits",
		})
		return "", false
	}
	return cardNumber, true
}
