package query

import (
	"fmt"
	"strconv"
)

// MatchKind is the comparison a predicate descriptor renders as.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchExact
	MatchMulti
	MatchContains
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchMulti:
		return "multi"
	case MatchContains:
		return "contains"
	default:
		return "none"
	}
}

// Role tells the builder whether a descriptor is row data or a predicate.
type Role int

const (
	RoleData Role = iota
	RolePredicate
)

// Descriptor describes one value's part in a statement.
type Descriptor struct {
	Value   any
	Columns []string
	Match   MatchKind
	Role    Role
}

// Data describes a column value for an INSERT or an UPDATE assignment.
func Data(value any, column string) Descriptor {
	return Descriptor{Value: value, Columns: []string{column}, Role: RoleData}
}

// Where describes an equality predicate on a single column.
func Where(value any, column string) Descriptor {
	return Descriptor{Value: value, Columns: []string{column}, Match: MatchExact, Role: RolePredicate}
}

// Contains describes a substring predicate over one or more columns.
func Contains(value any, columns ...string) Descriptor {
	return Descriptor{Value: value, Columns: columns, Match: MatchContains, Role: RolePredicate}
}

// In describes a membership predicate: the value must equal one of the columns.
func In(value any, columns ...string) Descriptor {
	return Descriptor{Value: value, Columns: columns, Match: MatchMulti, Role: RolePredicate}
}

// Format renders value as a storage literal. Numbers, and any value aimed at a
// column named "id", come out bare. Contains matches are wrapped in '%'.
// Quotes inside the value are not escaped: the literal is for display only,
// execution always goes through bound arguments.
func Format(value any, columns []string, kind MatchKind) string {
	if isNumeric(value) || hasIDColumn(columns) {
		return fmt.Sprint(value)
	}
	s := fmt.Sprint(value)
	if kind == MatchContains {
		return "'%" + s + "%'"
	}
	return "'" + s + "'"
}

// bindValue is the argument handed to the driver for the same descriptor.
func bindValue(value any, columns []string, kind MatchKind) any {
	if isNumeric(value) {
		return value
	}
	if hasIDColumn(columns) {
		if s, ok := value.(string); ok {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n
			}
		}
		return value
	}
	if kind == MatchContains {
		return "%" + fmt.Sprint(value) + "%"
	}
	return value
}

func isNumeric(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// hasIDColumn matches on the whole column name, so "owner_id" does not count.
func hasIDColumn(columns []string) bool {
	for _, c := range columns {
		if c == "id" {
			return true
		}
	}
	return false
}
