package database

import (
	"context"
	"fmt"

	"meow-notes/models"
	"meow-notes/query"
)

// Search returns ownerID's notes containing term in any of fields (all
// searchable fields when fields is empty). Each field is queried separately
// and a note matching in several fields is returned once.
//
// Results are in no particular order and two identical calls may order them
// differently. Callers that need a stable order must sort.
func (r *Repository) Search(ctx context.Context, ownerID int64, term string, fields []string) ([]models.Note, error) {
	if len(fields) == 0 {
		fields = SearchFields
	}

	gw, release := r.gateway(ctx)
	defer release()

	var matches []Row
	for _, field := range fields {
		if !isSearchField(field) {
			return nil, fmt.Errorf("unknown search field %q", field)
		}
		stmt, err := query.Render(query.SelectWhere, NotesTable,
			query.Where(ownerID, colOwnerID),
			query.Contains(term, field),
		)
		if err != nil {
			return nil, err
		}
		rows, err := gw.Read(ctx, stmt)
		if err != nil {
			return nil, err
		}
		matches = append(matches, rows...)
	}

	return parseNotes(dedupRows(matches))
}

// dedupRows drops rows equal in every column. Output follows map iteration
// order.
func dedupRows(rows []Row) []Row {
	unique := make(map[string]Row, len(rows))
	for _, row := range rows {
		unique[rowKey(row)] = row
	}
	out := make([]Row, 0, len(unique))
	for _, row := range unique {
		out = append(out, row)
	}
	return out
}

func rowKey(row Row) string {
	return fmt.Sprintf("%#v", []any(row))
}

func isSearchField(field string) bool {
	for _, f := range SearchFields {
		if f == field {
			return true
		}
	}
	return false
}
