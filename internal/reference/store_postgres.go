// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vinera/vinera/internal/platform/apperr"
	"github.com/vinera/vinera/internal/platform/database/schema"
	"github.com/vinera/vinera/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed reference store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListColors(context context.Context) ([]*Entry, error) {
	baseQuery := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefWineColor.ID, schema.RefWineColor.Name,
		schema.RefWineColor.Table, schema.RefWineColor.ID)

	translationQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s`,
		schema.RefWineColorTranslation.ColorID,
		schema.RefWineColorTranslation.Language,
		schema.RefWineColorTranslation.Label,
		schema.RefWineColorTranslation.Table)

	return repository.listDimension(context, "wine color", baseQuery, translationQuery)
}

func (repository *PostgresRepository) ListWineTypes(context context.Context) ([]*Entry, error) {
	baseQuery := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefWineType.ID, schema.RefWineType.Name,
		schema.RefWineType.Table, schema.RefWineType.ID)

	translationQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s`,
		schema.RefWineTypeTranslation.TypeID,
		schema.RefWineTypeTranslation.Language,
		schema.RefWineTypeTranslation.Label,
		schema.RefWineTypeTranslation.Table)

	return repository.listDimension(context, "wine type", baseQuery, translationQuery)
}

// listDimension performs the paired fetch for one dimension: base entities
// first, then their translations joined in memory by foreign key.
func (repository *PostgresRepository) listDimension(context context.Context, dimensionName, baseQuery, translationQuery string) ([]*Entry, error) {

	baseRows, err := repository.db.Query(context, baseQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_"+dimensionName)
	}
	defer baseRows.Close()

	var entries []*Entry
	entryByID := make(map[int]*Entry)

	for baseRows.Next() {
		var id int
		entry := &Entry{Translations: make(map[string]string)}
		if err := baseRows.Scan(&id, &entry.CanonicalName); err != nil {
			return nil, dberr.Wrap(err, "scan_"+dimensionName)
		}
		entries = append(entries, entry)
		entryByID[id] = entry
	}
	if err := baseRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_"+dimensionName)
	}
	baseRows.Close()

	// An empty reference table is a data-integrity gap, not a valid state:
	// surface it loudly so operators can tell it apart from an outage.
	if len(entries) == 0 {
		return nil, apperr.NotFound(dimensionName + " reference data")
	}

	translationRows, err := repository.db.Query(context, translationQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_"+dimensionName+"_translations")
	}
	defer translationRows.Close()

	for translationRows.Next() {
		var entityID int
		var language, label string
		if err := translationRows.Scan(&entityID, &language, &label); err != nil {
			return nil, dberr.Wrap(err, "scan_"+dimensionName+"_translation")
		}

		if entry, ok := entryByID[entityID]; ok {
			entry.Translations[language] = label
		}
	}
	if err := translationRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_"+dimensionName+"_translations")
	}

	return entries, nil
}
