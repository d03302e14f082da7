package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bunshock/hipbank/internal/domain"
	"github.com/bunshock/hipbank/internal/platform/logger"
	"github.com/bunshock/hipbank/internal/store"
)

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the
// CardStore interface. If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, log *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresCardStore{
		db:     db,
		logger: log.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

const cardColumns = `card_id, mobile_number, card_number, card_type, card_limit,
	amount_used, available_amount, created_at, created_by, updated_at, updated_by`

func scanCard(row interface{ Scan(dest ...any) error }) (*domain.Card, error) {
	var card domain.Card
	err := row.Scan(
		&card.CardID,
		&card.MobileNumber,
		&card.CardNumber,
		&card.CardType,
		&card.CardLimit,
		&card.AmountUsed,
		&card.AvailableAmount,
		&card.CreatedAt,
		&card.CreatedBy,
		&card.UpdatedAt,
		&card.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// Create implements store.CardStore.Create
// It saves a new card and fills in the generated surrogate key.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO cards (mobile_number, card_number, card_type, card_limit,
			amount_used, available_amount, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING card_id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		card.MobileNumber,
		card.CardNumber,
		card.CardType,
		card.CardLimit,
		card.AmountUsed,
		card.AvailableAmount,
		card.CreatedAt,
		card.CreatedBy,
		card.UpdatedAt,
		card.UpdatedBy,
	).Scan(&card.CardID)

	if err != nil {
		if isUniqueViolation(err) {
			// The card number was resolved as unique just before insert, so
			// a violation here means a concurrent create won the race.
			log.Warn("duplicate card number during card creation",
				slog.String("card_number", card.CardNumber))
			return fmt.Errorf("%w: card number %s", store.ErrDuplicate, card.CardNumber)
		}
		log.Error("failed to create card",
			slog.String("error", err.Error()),
			slog.String("card_number", card.CardNumber))
		return err
	}

	log.Info("card created successfully",
		slog.Int64("card_id", card.CardID),
		slog.String("card_number", card.CardNumber))
	return nil
}

// ExistsByNumber implements store.CardStore.ExistsByNumber
func (s *PostgresCardStore) ExistsByNumber(ctx context.Context, cardNumber string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM cards WHERE card_number = $1)`,
		cardNumber,
	).Scan(&exists)
	if err != nil {
		s.logger.Error("failed to check card number existence",
			slog.String("error", err.Error()))
		return false, err
	}
	return exists, nil
}

// FindByNumber implements store.CardStore.FindByNumber
// Returns store.ErrCardNotFound if no card has the number.
func (s *PostgresCardStore) FindByNumber(
	ctx context.Context,
	cardNumber string,
) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + cardColumns + ` FROM cards WHERE card_number = $1`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, cardNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found", slog.String("card_number", cardNumber))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to find card by number",
			slog.String("error", err.Error()),
			slog.String("card_number", cardNumber))
		return nil, err
	}
	return card, nil
}

// FindAll implements store.CardStore.FindAll
// Returns an empty slice when there are no cards.
func (s *PostgresCardStore) FindAll(ctx context.Context) ([]domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + cardColumns + ` FROM cards ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query cards", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	cards := []domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Error("failed to scan card row", slog.String("error", err.Error()))
			return nil, err
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return cards, nil
}

// Update implements store.CardStore.Update
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) Update(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE cards
		SET mobile_number = $1, card_type = $2, card_limit = $3, amount_used = $4,
			available_amount = $5, updated_at = $6, updated_by = $7
		WHERE card_id = $8
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		card.MobileNumber,
		card.CardType,
		card.CardLimit,
		card.AmountUsed,
		card.AvailableAmount,
		card.UpdatedAt,
		card.UpdatedBy,
		card.CardID,
	)
	if err != nil {
		log.Error("failed to update card",
			slog.String("error", err.Error()),
			slog.Int64("card_id", card.CardID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("card_id", card.CardID))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("card not found for update", slog.Int64("card_id", card.CardID))
		return store.ErrCardNotFound
	}

	log.Info("card updated successfully",
		slog.Int64("card_id", card.CardID),
		slog.String("card_number", card.CardNumber))
	return nil
}

// Delete implements store.CardStore.Delete
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) Delete(ctx context.Context, cardID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE card_id = $1`, cardID)
	if err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.Int64("card_id", cardID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("card_id", cardID))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("card not found for delete", slog.Int64("card_id", cardID))
		return store.ErrCardNotFound
	}

	log.Info("card deleted successfully", slog.Int64("card_id", cardID))
	return nil
}
