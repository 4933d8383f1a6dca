package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/balance"
	"github.com/dmitrijs2005/taskbalance/internal/common"
	"github.com/dmitrijs2005/taskbalance/internal/server/models"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/repomanager"
)

type BalanceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBalanceService(db *sql.DB, m repomanager.RepositoryManager) *BalanceService {
	return &BalanceService{db: db, repomanager: m}
}

func validateDate(date string) error {
	if _, err := time.Parse(common.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", common.ErrorValidation, date)
	}
	return nil
}

// Get returns common.ErrorNotFound when the user saved nothing for date.
func (s *BalanceService) Get(ctx context.Context, userID, date string) (balance.Record, error) {
	if err := validateDate(date); err != nil {
		return balance.Record{}, err
	}

	b, err := s.repomanager.Balances(s.db).Get(ctx, userID, date)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return balance.Record{}, err
		}
		return balance.Record{}, fmt.Errorf("error loading balance: %w", err)
	}
	return b.Record(), nil
}

// Upsert stores r for (userID, r.Date). Negative hours are clamped to zero.
func (s *BalanceService) Upsert(ctx context.Context, userID string, r balance.Record) (balance.Record, error) {
	if err := validateDate(r.Date); err != nil {
		return balance.Record{}, err
	}

	b, err := s.repomanager.Balances(s.db).Upsert(ctx, &models.Balance{
		UserID: userID,
		Date:   r.Date,
		Hours:  r.Hours.Clamped(),
	})
	if err != nil {
		return balance.Record{}, fmt.Errorf("error saving balance: %w", err)
	}
	return b.Record(), nil
}
