package store

import (
	"context"

	"github.com/gduarte/cadastro-api/internal/config"
	"github.com/gduarte/cadastro-api/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects to the configured database, applies pending
// migrations, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		logger.Err(err).Msg("connection to database failed")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		logger.Err(err).Msg("applying migrations failed")
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}, nil
}
