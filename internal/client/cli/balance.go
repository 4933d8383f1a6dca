package cli

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskbalance/internal/balance"
	"github.com/dmitrijs2005/taskbalance/internal/common"
)

// Balance prints today's hours per category and the balance score.
func (a *App) Balance(ctx context.Context) error {
	r, ok := a.balance.Current()
	if !ok {
		printlnFn("No balance record loaded, try reload")
		return nil
	}
	renderBalance(r.Date, a.balance.Breakdown(), a.balance.Score())
	return nil
}

// SetBalance books hours for one category of today's record. Negative
// values are stored as zero.
func (a *App) SetBalance(ctx context.Context, category, hours string) error {
	c := balance.Category(strings.ToLower(category))
	if !slices.Contains(balance.Categories, c) {
		return fmt.Errorf("%w: unknown category %q", common.ErrorValidation, category)
	}

	v, err := strconv.ParseFloat(hours, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: hours must be a number", common.ErrorValidation)
	}

	r, err := a.balance.SetHours(ctx, c, v)
	if err != nil {
		return reported(err)
	}
	if r.Date != "" {
		renderBalance(r.Date, balance.Breakdown(r.Hours), r.Score())
	}
	return nil
}
