package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/lovesurprise/internal/dbx"
	"github.com/dmitrijs2005/lovesurprise/internal/server/repositories/notifications"
	"github.com/dmitrijs2005/lovesurprise/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/lovesurprise/internal/server/repositories/surprises"
	"github.com/dmitrijs2005/lovesurprise/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Surprises(db dbx.DBTX) surprises.Repository
	Notifications(db dbx.DBTX) notifications.Repository
}
