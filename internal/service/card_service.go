package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bunshock/hipbank/internal/domain"
	"github.com/bunshock/hipbank/internal/idgen"
	"github.com/bunshock/hipbank/internal/store"
)

// CardInput carries the fields accepted on card creation.
type CardInput struct {
	MobileNumber string
	CardType     domain.CardType
}

// CardUpdate carries the optional fields of a partial card update. Nil
// fields are left unchanged. Raising or lowering CardLimit recomputes the
// available amount against what has already been spent.
type CardUpdate struct {
	MobileNumber *string
	CardType     *domain.CardType
	CardLimit    *float64
}

// CardService defines the card operations exposed over the API.
type CardService interface {
	// CreateCard issues a new card with a freshly generated card number
	// and the default limit.
	CreateCard(ctx context.Context, actor string, in CardInput) (*domain.Card, error)

	// FetchCard returns the card identified by the given card number.
	FetchCard(ctx context.Context, cardNumber string) (*domain.Card, error)

	// FetchAllCards returns every card.
	FetchAllCards(ctx context.Context) ([]domain.Card, error)

	// UpdateCard applies a partial update to the card identified by the
	// given card number and returns the merged result.
	UpdateCard(ctx context.Context, actor, cardNumber string, in CardUpdate) (*domain.Card, error)

	// DeleteCard removes the card identified by the given card number.
	DeleteCard(ctx context.Context, cardNumber string) error

	// SpendMoney debits amount from the card's available balance. It fails
	// with *InsufficientFundsError when the balance cannot cover it.
	SpendMoney(ctx context.Context, actor, cardNumber string, amount float64) (*domain.Card, error)
}

type cardService struct {
	cardStore   store.CardStore
	cardNumbers *idgen.Resolver
	logger      *slog.Logger
}

// NewCardService creates a CardService backed by the given store.
func NewCardService(cardStore store.CardStore, cardNumbers *idgen.Resolver, logger *slog.Logger) (CardService, error) {
	if cardStore == nil {
		return nil, errors.New("card store cannot be nil")
	}
	if cardNumbers == nil {
		return nil, errors.New("card number resolver cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &cardService{
		cardStore:   cardStore,
		cardNumbers: cardNumbers,
		logger:      logger.With(slog.String("component", "card_service")),
	}, nil
}

func (s *cardService) CreateCard(ctx context.Context, actor string, in CardInput) (*domain.Card, error) {
	number, err := s.cardNumbers.GenerateUnique(ctx, s.cardStore.ExistsByNumber)
	if err != nil {
		return nil, err
	}

	card := domain.NewCard(in.MobileNumber, number, in.CardType, actor)
	if err := s.cardStore.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to save card: %w", err)
	}

	s.logger.DebugContext(ctx, "card created",
		slog.String("card_number", card.CardNumber),
		slog.String("card_type", string(card.CardType)))
	return card, nil
}

func (s *cardService) FetchCard(ctx context.Context, cardNumber string) (*domain.Card, error) {
	card, err := s.cardStore.FindByNumber(ctx, cardNumber)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewNotFoundError("Card", "cardNumber", cardNumber)
		}
		return nil, fmt.Errorf("failed to find card: %w", err)
	}
	return card, nil
}

func (s *cardService) FetchAllCards(ctx context.Context) ([]domain.Card, error) {
	cards, err := s.cardStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

func (s *cardService) UpdateCard(ctx context.Context, actor, cardNumber string, in CardUpdate) (*domain.Card, error) {
	card, err := s.FetchCard(ctx, cardNumber)
	if err != nil {
		return nil, err
	}

	if in.MobileNumber != nil {
		card.MobileNumber = *in.MobileNumber
	}
	if in.CardType != nil {
		card.CardType = *in.CardType
	}
	if in.CardLimit != nil {
		card.SetLimit(*in.CardLimit, actor)
	} else {
		card.Touch(actor)
	}

	if err := s.cardStore.Update(ctx, card); err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewNotFoundError("Card", "cardNumber", cardNumber)
		}
		return nil, fmt.Errorf("failed to update card: %w", err)
	}
	return card, nil
}

func (s *cardService) DeleteCard(ctx context.Context, cardNumber string) error {
	card, err := s.FetchCard(ctx, cardNumber)
	if err != nil {
		return err
	}
	if err := s.cardStore.Delete(ctx, card.CardID); err != nil {
		if store.IsNotFoundError(err) {
			return NewNotFoundError("Card", "cardNumber", cardNumber)
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}

func (s *cardService) SpendMoney(ctx context.Context, actor, cardNumber string, amount float64) (*domain.Card, error) {
	card, err := s.FetchCard(ctx, cardNumber)
	if err != nil {
		return nil, err
	}

	if err := card.Spend(amount, actor); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, &InsufficientFundsError{CardNumber: cardNumber, Amount: amount}
		}
		return nil, err
	}

	if err := s.cardStore.Update(ctx, card); err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewNotFoundError("Card", "cardNumber", cardNumber)
		}
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	s.logger.DebugContext(ctx, "card spend recorded",
		slog.String("card_number", card.CardNumber),
		slog.Float64("amount", amount),
		slog.Float64("available_amount", card.AvailableAmount))
	return card, nil
}
