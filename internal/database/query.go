package database

import "strings"

// SelectBuilder constructs a SELECT statement with bracket-quoted
// identifiers, the quoting style understood by SQL Server and Access
// drivers. Identifiers are wrapped in [] but not otherwise sanitised —
// a caller-supplied name containing a closing bracket is passed through
// as-is, so identifiers must come from trusted input.
//
// Usage:
//
//	sql := Select("Items").Columns("ID", "Name").Build()
//	// SELECT [ID], [Name] FROM [Items]
type SelectBuilder struct {
	table   string
	columns []string
}

// Select starts a new SelectBuilder for the given table.
func Select(table string) *SelectBuilder {
	return &SelectBuilder{table: table}
}

// Columns restricts the SELECT to the specified columns.
// If not called, SELECT * is used.
func (b *SelectBuilder) Columns(cols ...string) *SelectBuilder {
	b.columns = cols
	return b
}

// Build produces the final SQL string.
func (b *SelectBuilder) Build() string {
	cols := "*"
	if len(b.columns) > 0 {
		quoted := make([]string, len(b.columns))
		for i, c := range b.columns {
			quoted[i] = bracketIdent(c)
		}
		cols = strings.Join(quoted, ", ")
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(cols)
	sb.WriteString(" FROM ")
	sb.WriteString(bracketIdent(b.table))
	return sb.String()
}

// BuildSelect is the one-shot form of the builder: a SELECT over the
// given columns of table, or all columns when none are given.
func BuildSelect(table string, columns ...string) string {
	return Select(table).Columns(columns...).Build()
}

// bracketIdent wraps a SQL identifier in square brackets.
func bracketIdent(name string) string {
	return "[" + name + "]"
}
