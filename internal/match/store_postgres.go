// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package match

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vinera/vinera/internal/platform/database/schema"
	"github.com/vinera/vinera/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed match store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) RatedWineIDs(context context.Context, userID string) ([]int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.WineMatch.WineID, schema.WineMatch.Table, schema.WineMatch.UserID)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "rated_wine_ids")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_rated_wine_id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "rated_wine_ids")
	}

	return ids, nil
}

func (repository *PostgresRepository) Upsert(context context.Context, userID string, wineID int64, liked bool) error {
	// A re-swipe overwrites the earlier verdict and refreshes updatedat.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()`,
		schema.WineMatch.Table,
		schema.WineMatch.UserID, schema.WineMatch.WineID, schema.WineMatch.Liked,
		schema.WineMatch.CreatedAt, schema.WineMatch.UpdatedAt,
		schema.WineMatch.UserID, schema.WineMatch.WineID,
		schema.WineMatch.Liked, schema.WineMatch.Liked,
		schema.WineMatch.UpdatedAt)

	if _, err := repository.db.Exec(context, query, userID, wineID, liked); err != nil {
		return dberr.Wrap(err, "upsert_match")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, userID string, wineID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.WineMatch.Table, schema.WineMatch.UserID, schema.WineMatch.WineID)

	tag, err := repository.db.Exec(context, query, userID, wineID)
	if err != nil {
		return dberr.Wrap(err, "delete_match")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
