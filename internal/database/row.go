package database

// Field is a single (column name, value) pair of a result row.
// Value is one of: nil, string, int64, float64, bool.
type Field struct {
	Column string
	Value  any
}

// Row is an ordered sequence of fields, in the result set's column order.
// Order matters — it is the driver's fetch order, which callers may rely on.
type Row []Field

// Get returns the value of the named column and whether it was present.
// With duplicate column names the first match wins.
func (r Row) Get(column string) (any, bool) {
	for _, f := range r {
		if f.Column == column {
			return f.Value, true
		}
	}
	return nil, false
}

// Columns returns the column names in result-set order.
func (r Row) Columns() []string {
	cols := make([]string, len(r))
	for i, f := range r {
		cols[i] = f.Column
	}
	return cols
}

// Map flattens the row into a map. Column order is lost, and with
// duplicate column names the last value wins.
func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r))
	for _, f := range r {
		m[f.Column] = f.Value
	}
	return m
}
