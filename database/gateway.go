package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"meow-notes/query"
)

// Row is one result row, addressed by column position in schema order.
type Row []any

// Gateway executes rendered statements.
type Gateway interface {
	Read(ctx context.Context, stmt query.Statement) ([]Row, error)
	Write(ctx context.Context, stmt query.Statement) error
}

// UnitOfWork owns at most one connection for the lifetime of a request.
// It is not safe for concurrent use.
type UnitOfWork struct {
	db     *DB
	conn   *sql.Conn
	closed bool
}

var ErrUnitOfWorkClosed = errors.New("unit of work is closed")

// maxWriteAttempts bounds retries of a write that hit a locked database
const maxWriteAttempts = 3

var _ Gateway = (*UnitOfWork)(nil)

func (u *UnitOfWork) connection(ctx context.Context) (*sql.Conn, error) {
	if u.closed {
		return nil, ErrUnitOfWorkClosed
	}
	if u.conn != nil {
		return u.conn, nil
	}
	conn, err := u.db.Conn(ctx)
	if err != nil {
		return nil, &StorageError{Op: "open connection", Err: err}
	}
	u.conn = conn
	return conn, nil
}

// Opened reports whether a connection has been taken from the pool.
func (u *UnitOfWork) Opened() bool {
	return u.conn != nil
}

// Read runs a SELECT and returns every row.
func (u *UnitOfWork) Read(ctx context.Context, stmt query.Statement) ([]Row, error) {
	start := time.Now()
	rows, err := u.read(ctx, stmt)
	observeStatement(stmt, err, time.Since(start))
	return rows, err
}

func (u *UnitOfWork) read(ctx context.Context, stmt query.Statement) ([]Row, error) {
	conn, err := u.connection(ctx)
	if err != nil {
		return nil, err
	}

	slog.Debug("sql read", "statement", stmt.String())

	rows, err := conn.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, mapSQLiteError("read "+stmt.Table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, mapSQLiteError("read "+stmt.Table, err)
	}

	result := make([]Row, 0)
	for rows.Next() {
		row := make(Row, len(columns))
		dest := make([]any, len(columns))
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, mapSQLiteError("read "+stmt.Table, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError("read "+stmt.Table, err)
	}

	return result, nil
}

// Write runs an INSERT, UPDATE or DELETE. Each call commits on its own.
func (u *UnitOfWork) Write(ctx context.Context, stmt query.Statement) error {
	start := time.Now()
	err := u.write(ctx, stmt)
	observeStatement(stmt, err, time.Since(start))
	return err
}

func (u *UnitOfWork) write(ctx context.Context, stmt query.Statement) error {
	conn, err := u.connection(ctx)
	if err != nil {
		return err
	}

	slog.Debug("sql write", "statement", stmt.String())

	var lastErr error
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		_, err := conn.ExecContext(ctx, stmt.SQL, stmt.Args...)
		if err == nil {
			return nil
		}
		if !isBusy(err) {
			return mapSQLiteError("write "+stmt.Table, err)
		}
		lastErr = err
		slog.Debug("sql write busy", "table", stmt.Table, "attempt", attempt+1, "err", err)
		select {
		case <-ctx.Done():
			return mapSQLiteError("write "+stmt.Table, ctx.Err())
		case <-time.After(time.Duration(attempt+1) * 40 * time.Millisecond):
		}
	}
	return mapSQLiteError("write "+stmt.Table, lastErr)
}

// Close returns the connection to the pool. Safe to call more than once.
func (u *UnitOfWork) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true
	if u.conn == nil {
		return nil
	}
	err := u.conn.Close()
	u.conn = nil
	return err
}

type unitOfWorkKey struct{}

// WithUnitOfWork binds u to ctx for the repository calls made with it.
func WithUnitOfWork(ctx context.Context, u *UnitOfWork) context.Context {
	return context.WithValue(ctx, unitOfWorkKey{}, u)
}

// UnitOfWorkFrom returns the unit of work bound to ctx, if any.
func UnitOfWorkFrom(ctx context.Context) (*UnitOfWork, bool) {
	u, ok := ctx.Value(unitOfWorkKey{}).(*UnitOfWork)
	return u, ok && u != nil
}
