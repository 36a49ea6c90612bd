package query

import "strings"

// Parts is the builder output that the templates are filled from.
//
// Columns[i], Values[i], DataArgs[i] and DataLiterals[i] always describe the
// same data descriptor. PredicateArgs may be longer than Predicates when a
// predicate binds its value more than once.
type Parts struct {
	Columns      []string
	Values       []string
	Assignments  []string
	DataArgs     []any
	DataLiterals []string

	Predicates        []string
	PredicateArgs     []any
	PredicateLiterals []string
}

// Build resolves descriptors in input order into column lists, placeholder
// lists, assignment clauses and predicate clauses.
func Build(descriptors []Descriptor) Parts {
	var p Parts
	for _, d := range descriptors {
		if len(d.Columns) == 0 {
			continue
		}
		arg := bindValue(d.Value, d.Columns, d.Match)
		literal := Format(d.Value, d.Columns, d.Match)

		if d.Role == RoleData {
			column := d.Columns[0]
			p.Columns = append(p.Columns, column)
			p.Values = append(p.Values, "?")
			p.Assignments = append(p.Assignments, column+" = ?")
			p.DataArgs = append(p.DataArgs, arg)
			p.DataLiterals = append(p.DataLiterals, literal)
			continue
		}

		switch d.Match {
		case MatchMulti:
			p.addPredicate("? IN ("+strings.Join(d.Columns, ", ")+")", arg, literal, 1)
		case MatchContains:
			if len(d.Columns) == 1 {
				p.addPredicate("("+d.Columns[0]+") LIKE ?", arg, literal, 1)
				break
			}
			// SQLite rejects a row value on the left of LIKE, so each column
			// gets its own comparison against the same pattern.
			clauses := make([]string, len(d.Columns))
			for i, c := range d.Columns {
				clauses[i] = c + " LIKE ?"
			}
			p.addPredicate("("+strings.Join(clauses, " OR ")+")", arg, literal, len(d.Columns))
		default:
			p.addPredicate(d.Columns[0]+" = ?", arg, literal, 1)
		}
	}
	return p
}

func (p *Parts) addPredicate(clause string, arg any, literal string, binds int) {
	p.Predicates = append(p.Predicates, clause)
	for i := 0; i < binds; i++ {
		p.PredicateArgs = append(p.PredicateArgs, arg)
		p.PredicateLiterals = append(p.PredicateLiterals, literal)
	}
}
