// The annotation snapshot is a sqlite database prepared by the fetch tooling.
// Loading it here materializes each table into a source.Table so a pipeline
// run never touches the database again after startup.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/biokg/snp2kg/pkg/source"
)

const (
	SymbolGenesTable  = "symbol_genes"
	NumericGenesTable = "numeric_genes"
	AssociationsTable = "variant_associations"
)

// ORDER BY keeps snapshot row order stable across runs; sqlite gives no
// ordering guarantee without it.
const (
	symbolQuery = `SELECT external_id, gene_key, location, position
		FROM symbol_genes ORDER BY external_id;`
	numericQuery = `SELECT external_id, gene_key, position
		FROM numeric_genes ORDER BY external_id;`
	associationQuery = `SELECT variant_id, gene_key, relation
		FROM variant_associations ORDER BY variant_id, gene_key, relation;`
)

func LoadSymbolGenes(db *sql.DB) (source.Table, error) {
	return loadTable(db, SymbolGenesTable, symbolQuery, 4)
}

func LoadNumericGenes(db *sql.DB) (source.Table, error) {
	return loadTable(db, NumericGenesTable, numericQuery, 3)
}

func LoadAssociations(db *sql.DB) (source.Table, error) {
	return loadTable(db, AssociationsTable, associationQuery, 3)
}

func loadTable(db *sql.DB, name, qstring string, ncols int) (source.Table, error) {

	ctx := context.TODO()

	stm, err := db.PrepareContext(ctx, qstring)
	if err != nil {
		return source.Table{}, fmt.Errorf("prepare %s: %w", name, err)
	}
	defer stm.Close()

	rows, err := stm.QueryContext(ctx)
	if err != nil {
		return source.Table{}, fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	t := source.Table{Name: name}

	for rows.Next() {
		cols := make([]sql.NullString, ncols)
		dest := make([]any, ncols)
		for i := range cols {
			dest[i] = &cols[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return source.Table{}, fmt.Errorf("scan %s: %w", name, err)
		}

		fields := make([]string, ncols)
		for i, c := range cols {
			fields[i] = c.String
		}
		t.Rows = append(t.Rows, fields)
	}

	if err := rows.Err(); err != nil {
		return source.Table{}, fmt.Errorf("iterate %s: %w", name, err)
	}

	return t, nil
}
