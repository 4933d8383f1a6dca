package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/taskbalance/internal/dbx"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/balances"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code runs
// inside or outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Balances(db dbx.DBTX) balances.Repository
	Attachments(db dbx.DBTX) attachments.Repository
}
