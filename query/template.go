package query

import (
	"fmt"
	"strings"
)

// Shape is one of the fixed statement skeletons.
type Shape int

const (
	SelectAll Shape = iota
	SelectWhere
	Insert
	DeleteAll
	DeleteWhere
	UpdateWhere
)

const (
	tokenTable      = "{table}"
	tokenColumns    = "{columns}"
	tokenValues     = "{values}"
	tokenParameters = "{parameters}"
	tokenConditions = "{conditions}"
)

func (s Shape) String() string {
	switch s {
	case SelectAll:
		return "select_all"
	case SelectWhere:
		return "select_where"
	case Insert:
		return "insert"
	case DeleteAll:
		return "delete_all"
	case DeleteWhere:
		return "delete_where"
	case UpdateWhere:
		return "update_where"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// IsRead reports whether the shape returns rows.
func (s Shape) IsRead() bool {
	return s == SelectAll || s == SelectWhere
}

func (s Shape) template() (string, bool) {
	switch s {
	case SelectAll:
		return "SELECT * FROM {table}", true
	case SelectWhere:
		return "SELECT * FROM {table} WHERE {conditions}", true
	case Insert:
		return "INSERT INTO {table} ({columns}) VALUES ({values})", true
	case DeleteAll:
		return "DELETE FROM {table}", true
	case DeleteWhere:
		return "DELETE FROM {table} WHERE {conditions}", true
	case UpdateWhere:
		return "UPDATE {table} SET {parameters} WHERE {conditions}", true
	default:
		return "", false
	}
}

// Statement is a rendered statement with its bound arguments.
type Statement struct {
	Shape Shape
	Table string
	SQL   string
	Args  []any

	literals []string
}

// String renders the statement with every placeholder replaced by its
// formatted literal. The result is for logs and must never be executed.
func (s Statement) String() string {
	var b strings.Builder
	i := 0
	for _, r := range s.SQL {
		if r == '?' && i < len(s.literals) {
			b.WriteString(s.literals[i])
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Render fills the skeleton for shape with table and the resolved descriptors.
//
// A *Where shape needs at least one predicate descriptor; with none, the
// statement ends in an empty WHERE clause and the storage engine rejects it.
func Render(shape Shape, table string, descriptors ...Descriptor) (Statement, error) {
	tmpl, ok := shape.template()
	if !ok {
		return Statement{}, fmt.Errorf("query: unknown statement shape %d", int(shape))
	}

	sql := strings.ReplaceAll(tmpl, tokenTable, table)
	parts := Build(descriptors)

	stmt := Statement{Shape: shape, Table: table}

	if strings.Contains(sql, tokenColumns) && strings.Contains(sql, tokenValues) {
		sql = strings.Replace(sql, tokenColumns, strings.Join(parts.Columns, ", "), 1)
		sql = strings.Replace(sql, tokenValues, strings.Join(parts.Values, ", "), 1)
		stmt.Args = append(stmt.Args, parts.DataArgs...)
		stmt.literals = append(stmt.literals, parts.DataLiterals...)
	}
	if strings.Contains(sql, tokenParameters) {
		sql = strings.Replace(sql, tokenParameters, strings.Join(parts.Assignments, ", "), 1)
		stmt.Args = append(stmt.Args, parts.DataArgs...)
		stmt.literals = append(stmt.literals, parts.DataLiterals...)
	}
	if strings.Contains(sql, tokenConditions) {
		sql = strings.Replace(sql, tokenConditions, strings.Join(parts.Predicates, " AND "), 1)
		stmt.Args = append(stmt.Args, parts.PredicateArgs...)
		stmt.literals = append(stmt.literals, parts.PredicateLiterals...)
	}

	stmt.SQL = sql
	return stmt, nil
}
