package models

import (
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/balance"
)

// Balance is one user's hour allocation for one date. (UserID, Date) is unique.
type Balance struct {
	ID        string
	UserID    string
	Date      string
	Hours     balance.Hours
	UpdatedAt time.Time
}

func (b Balance) Record() balance.Record {
	return balance.Record{ID: b.ID, Date: b.Date, Hours: b.Hours}
}
