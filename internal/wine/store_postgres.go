// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package wine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vinera/vinera/internal/filter"
	"github.com/vinera/vinera/internal/platform/database/schema"
	"github.com/vinera/vinera/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed wine store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Wine Repository Implementation

/*
FetchWines returns the filtered wine rows and the total match count.

Description: The query runs entirely against the pre-joined catalog view:
every direct dimension becomes an ANY($n) predicate over a view column, so
an omitted dimension simply contributes no clause. Unit labels are parsed
back to numeric volumes before binding; malformed labels are dropped. The
total count rides along via COUNT(*) OVER() so listing and count stay one
round trip.

Parameters:
  - context: context.Context
  - backendFilter: filter.BackendFilter
  - wineIDs: []int64 (nil for no ID constraint)
  - limit: int (<= 0 disables the cap)
  - offset: int

Returns:
  - []*Row: Hydrated rows ordered by catalog ID
  - int: Total match count
  - error: Database execution errors
*/
func (repository *PostgresRepository) FetchWines(context context.Context, backendFilter filter.BackendFilter, wineIDs []int64, limit, offset int) ([]*Row, int, error) {

	view := schema.CatalogWineView

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			w.%s,
			COUNT(*) OVER() AS total_count
		FROM %s w
		WHERE 1=1
	`, strings.Join(view.Columns(), ", w."), view.Table))

	// Dynamic WHERE clause construction, one predicate per present dimension
	if len(backendFilter.Countries) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = ANY($%d)", view.CountryCode, argID))
		args = append(args, backendFilter.Countries)
		argID++
	}

	if len(backendFilter.Regions) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = ANY($%d)", view.RegionDefaultName, argID))
		args = append(args, backendFilter.Regions)
		argID++
	}

	if len(backendFilter.WineTypes) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = ANY($%d)", view.WineType, argID))
		args = append(args, backendFilter.WineTypes)
		argID++
	}

	if len(backendFilter.Colors) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = ANY($%d)", view.Color, argID))
		args = append(args, backendFilter.Colors)
		argID++
	}

	if len(backendFilter.Sweetness) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = ANY($%d)", view.Sweetness, argID))
		args = append(args, backendFilter.Sweetness)
		argID++
	}

	if len(backendFilter.AlcoholLevels) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = ANY($%d)", view.AlcoholLevel, argID))
		args = append(args, backendFilter.AlcoholLevels)
		argID++
	}

	if len(backendFilter.ProductionTypes) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = ANY($%d)", view.ProductionType, argID))
		args = append(args, backendFilter.ProductionTypes)
		argID++
	}

	if len(backendFilter.PriceRanges) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = ANY($%d)", view.PriceRange, argID))
		args = append(args, backendFilter.PriceRanges)
		argID++
	}

	// Unit labels carry the volume as text ("0.75L"); bind the parsed
	// numeric values. Labels that fail to parse are dropped like any other
	// unresolvable filter value.
	if volumes := parseUnitVolumes(backendFilter.Units); len(volumes) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = ANY($%d::numeric[])", view.UnitVolume, argID))
		args = append(args, volumes)
		argID++
	}

	// ID inclusion set pre-resolved from the junction dimensions
	if wineIDs != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND w.%s = ANY($%d)", view.ID, argID))
		args = append(args, wineIDs)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY w.%s ASC", view.ID))

	if limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
		args = append(args, limit, offset)
	} else if offset > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argID))
		args = append(args, offset)
	}

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "fetch_wines")
	}
	defer rows.Close()

	var wines []*Row
	var totalCount int

	for rows.Next() {
		row := &Row{}
		var regionNames, wineTypeLabels, colorLabels, sweetnessLabels,
			alcoholLabels, productionLabels, priceLabels []byte

		err := rows.Scan(
			&row.ID,
			&row.ExternalRef,
			&row.Name,
			&row.Year,
			&row.RegionID,
			&regionNames,
			&row.RegionDefaultName,
			&row.CountryCode,
			&row.WineType,
			&wineTypeLabels,
			&row.Color,
			&colorLabels,
			&row.Sweetness,
			&sweetnessLabels,
			&row.AlcoholLevel,
			&alcoholLabels,
			&row.ProductionType,
			&productionLabels,
			&row.PriceRange,
			&priceLabels,
			&row.AlcoholMin,
			&row.AlcoholMax,
			&row.PriceMin,
			&row.PriceMax,
			&row.UnitVolume,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_wine")
		}

		row.RegionNames = decodeLabels(regionNames)
		row.WineTypeLabels = decodeLabels(wineTypeLabels)
		row.ColorLabels = decodeLabels(colorLabels)
		row.SweetnessLabels = decodeLabels(sweetnessLabels)
		row.AlcoholLabels = decodeLabels(alcoholLabels)
		row.ProductionTypeLabels = decodeLabels(productionLabels)
		row.PriceRangeLabels = decodeLabels(priceLabels)

		wines = append(wines, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "fetch_wines")
	}

	return wines, totalCount, nil
}

func (repository *PostgresRepository) WineIDsByGrapes(context context.Context, grapes []string) ([]int64, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM %s WHERE LOWER(%s) = ANY($1)`,
		schema.WineGrape.WineID, schema.WineGrape.Table, schema.WineGrape.GrapeName)

	return repository.listWineIDs(context, "wine_ids_by_grapes", query, lowered(grapes))
}

func (repository *PostgresRepository) WineIDsByProducers(context context.Context, producers []string) ([]int64, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM %s WHERE LOWER(%s) = ANY($1)`,
		schema.WineProducer.WineID, schema.WineProducer.Table, schema.WineProducer.ProducerName)

	return repository.listWineIDs(context, "wine_ids_by_producers", query, lowered(producers))
}

func (repository *PostgresRepository) GrapesByWineIDs(context context.Context, wineIDs []int64) (map[int64][]string, error) {
	if len(wineIDs) == 0 {
		return map[int64][]string{}, nil
	}

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s ASC, %s ASC`,
		schema.WineGrape.WineID, schema.WineGrape.GrapeName, schema.WineGrape.Table,
		schema.WineGrape.WineID, schema.WineGrape.WineID, schema.WineGrape.GrapeName)

	rows, err := repository.db.Query(context, query, wineIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "grapes_by_wine_ids")
	}
	defer rows.Close()

	grapes := make(map[int64][]string)
	for rows.Next() {
		var wineID int64
		var grapeName string
		if err := rows.Scan(&wineID, &grapeName); err != nil {
			return nil, dberr.Wrap(err, "scan_wine_grape")
		}
		grapes[wineID] = append(grapes[wineID], grapeName)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "grapes_by_wine_ids")
	}

	return grapes, nil
}

func (repository *PostgresRepository) WineIDByRef(context context.Context, externalRef string) (int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.CatalogWineView.ID, schema.CatalogWineView.Table, schema.CatalogWineView.ExternalRef)

	var id int64
	if err := repository.db.QueryRow(context, query, externalRef).Scan(&id); err != nil {
		return 0, dberr.Wrap(err, "resolve_wine_ref")
	}
	return id, nil
}

// listWineIDs runs one junction-table ID query.
func (repository *PostgresRepository) listWineIDs(context context.Context, action, query string, values []string) ([]int64, error) {
	rows, err := repository.db.Query(context, query, values)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return ids, nil
}

// decodeLabels unmarshals a JSONB language map, tolerating NULL and garbage:
// a listing row must never fail on one broken translation blob.
func decodeLabels(raw []byte) map[string]string {
	if len(raw) == 0 {
		return nil
	}

	labels := make(map[string]string)
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil
	}
	return labels
}

// parseUnitVolumes converts unit labels to numeric volumes, dropping
// malformed ones.
func parseUnitVolumes(labels []string) []float64 {
	var volumes []float64
	for _, label := range labels {
		if volume, ok := filter.ParseUnitVolume(label); ok {
			volumes = append(volumes, volume)
		}
	}
	return volumes
}

// lowered lower-cases values for case-insensitive junction matching.
func lowered(values []string) []string {
	result := make([]string, len(values))
	for i, value := range values {
		result[i] = strings.ToLower(value)
	}
	return result
}
