package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type statusRepository struct {
	db *sqlx.DB
}

func NewStatusRepository(db *sqlx.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) CountTablesDB(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `
			SELECT COUNT(*)
			FROM information_schema.tables
			WHERE table_schema = 'public'
		`)

	if err != nil {
		return 0, fmt.Errorf("failed to count database tables: %w", err)
	}

	return count, nil
}

func (r *statusRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
