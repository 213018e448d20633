package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"instituteCMS/internal/models"
)

type tablesRepository struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) TablesRepository {
	return &tablesRepository{db: db}
}

func (r *tablesRepository) CountCollections(ctx context.Context) (*models.CollectionStats, error) {
	var stats models.CollectionStats

	err := r.db.GetContext(ctx, &stats, `
		SELECT
			(SELECT COUNT(*) FROM blogs)     AS blogs,
			(SELECT COUNT(*) FROM courses)   AS courses,
			(SELECT COUNT(*) FROM contacts)  AS contacts,
			(SELECT COUNT(*) FROM inquiries) AS inquiries,
			(SELECT COUNT(*) FROM admins)    AS admins
	`)
	if err != nil {
		return nil, fmt.Errorf("error counting collections: %w", err)
	}

	return &stats, nil
}
