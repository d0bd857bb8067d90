// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package filter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vinera/vinera/internal/platform/apperr"
	"github.com/vinera/vinera/internal/platform/database/schema"
	"github.com/vinera/vinera/internal/platform/dberr"
)

// PostgresOptionRepository implements [OptionRepository] using pgx.
type PostgresOptionRepository struct {
	db *pgxpool.Pool
}

// NewPostgresOptionRepository constructs a PostgreSQL backed option store.
func NewPostgresOptionRepository(db *pgxpool.Pool) *PostgresOptionRepository {
	return &PostgresOptionRepository{db: db}
}

func (repository *PostgresOptionRepository) ListGrapes(context context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM %s ORDER BY %s ASC`,
		schema.WineGrape.GrapeName, schema.WineGrape.Table, schema.WineGrape.GrapeName)
	return repository.listDistinct(context, "grapes", query)
}

func (repository *PostgresOptionRepository) ListCountries(context context.Context) ([]string, error) {
	return repository.listViewColumn(context, "countries", schema.CatalogWineView.CountryCode)
}

func (repository *PostgresOptionRepository) ListRegions(context context.Context) ([]string, error) {
	return repository.listViewColumn(context, "regions", schema.CatalogWineView.RegionDefaultName)
}

func (repository *PostgresOptionRepository) ListSweetnessLevels(context context.Context) ([]string, error) {
	return repository.listViewColumn(context, "sweetness", schema.CatalogWineView.Sweetness)
}

func (repository *PostgresOptionRepository) ListAlcoholLevels(context context.Context) ([]string, error) {
	return repository.listViewColumn(context, "alcohol_levels", schema.CatalogWineView.AlcoholLevel)
}

func (repository *PostgresOptionRepository) ListProductionTypes(context context.Context) ([]string, error) {
	return repository.listViewColumn(context, "production_types", schema.CatalogWineView.ProductionType)
}

func (repository *PostgresOptionRepository) ListPriceRanges(context context.Context) ([]string, error) {
	return repository.listViewColumn(context, "price_ranges", schema.CatalogWineView.PriceRange)
}

func (repository *PostgresOptionRepository) ListUnits(context context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL ORDER BY %s ASC`,
		schema.CatalogWineView.UnitVolume, schema.CatalogWineView.Table,
		schema.CatalogWineView.UnitVolume, schema.CatalogWineView.UnitVolume)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_units")
	}
	defer rows.Close()

	var units []string
	for rows.Next() {
		var volume float64
		if err := rows.Scan(&volume); err != nil {
			return nil, dberr.Wrap(err, "scan_unit")
		}
		units = append(units, FormatUnitVolume(volume))
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_units")
	}

	if len(units) == 0 {
		return nil, apperr.NotFound("unit options")
	}
	return units, nil
}

// listViewColumn lists the distinct non-null values of one wine view column.
func (repository *PostgresOptionRepository) listViewColumn(context context.Context, dimension, column string) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL ORDER BY %s ASC`,
		column, schema.CatalogWineView.Table, column, column)
	return repository.listDistinct(context, dimension, query)
}

func (repository *PostgresOptionRepository) listDistinct(context context.Context, dimension, query string) ([]string, error) {
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_"+dimension)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, dberr.Wrap(err, "scan_"+dimension)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_"+dimension)
	}

	// Distinguishable from an outage on purpose: an empty dimension means the
	// view is broken and the caller must not cache it.
	if len(values) == 0 {
		return nil, apperr.NotFound(dimension + " options")
	}
	return values, nil
}
