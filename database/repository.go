package database

import (
	"context"
	"fmt"

	"meow-notes/query"
)

const (
	UsersTable = "users"
	NotesTable = "notes"

	colID       = "id"
	colUsername = "username"
	colPassword = "password"
	colOwnerID  = "owner_id"
	colCreated  = "created_at"
	colTitle    = "title"
	colTags     = "tags"
	colContent  = "content"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// gateway returns the unit of work bound to ctx. Without one, a unit of work
// is opened for the duration of the call and closed by release.
func (r *Repository) gateway(ctx context.Context) (Gateway, func()) {
	if u, ok := UnitOfWorkFrom(ctx); ok {
		return u, func() {}
	}
	u := r.db.NewUnitOfWork()
	return u, func() { u.Close() }
}

func (r *Repository) read(ctx context.Context, shape query.Shape, table string, descriptors ...query.Descriptor) ([]Row, error) {
	stmt, err := query.Render(shape, table, descriptors...)
	if err != nil {
		return nil, err
	}
	gw, release := r.gateway(ctx)
	defer release()
	return gw.Read(ctx, stmt)
}

func (r *Repository) write(ctx context.Context, shape query.Shape, table string, descriptors ...query.Descriptor) error {
	stmt, err := query.Render(shape, table, descriptors...)
	if err != nil {
		return err
	}
	gw, release := r.gateway(ctx)
	defer release()
	return gw.Write(ctx, stmt)
}

// ownerColumn is the column that scopes a table to one user.
func ownerColumn(table string) string {
	if table == UsersTable {
		return colID
	}
	return colOwnerID
}

// GetAll returns every row of table, or only ownerID's rows when given.
func (r *Repository) GetAll(ctx context.Context, table string, ownerID *int64) ([]Row, error) {
	if ownerID == nil {
		return r.read(ctx, query.SelectAll, table)
	}
	return r.read(ctx, query.SelectWhere, table, query.Where(*ownerID, ownerColumn(table)))
}

// DeleteAll removes every row of table, or only ownerID's rows when given.
func (r *Repository) DeleteAll(ctx context.Context, table string, ownerID *int64) (string, error) {
	var err error
	if ownerID == nil {
		err = r.write(ctx, query.DeleteAll, table)
	} else {
		err = r.write(ctx, query.DeleteWhere, table, query.Where(*ownerID, ownerColumn(table)))
	}
	if err != nil {
		return "Entries were unable to be deleted! Error: " + err.Error(), err
	}
	return fmt.Sprintf("All entries in '%s' were deleted.", table), nil
}
