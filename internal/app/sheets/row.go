// internal/app/sheets/row.go
package sheets

// Row is one worksheet row as a column-name → cell-text mapping. Cells
// are untyped text; callers coerce. Missing columns read as "".
type Row map[string]string

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a copy of r with the non-key cells of patch applied.
func (r Row) Merge(patch Row) Row {
	out := r.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// rowFromValues zips a header row and a value row into a Row. Short value
// rows (trailing blank cells trimmed by the backend) fill with "".
func rowFromValues(header, values []string) Row {
	row := make(Row, len(header))
	for i, col := range header {
		if i < len(values) {
			row[col] = values[i]
		} else {
			row[col] = ""
		}
	}
	return row
}

// valuesFromRow flattens a Row into cell order per the schema's columns.
func valuesFromRow(schema Schema, row Row) []string {
	values := make([]string, len(schema.Columns))
	for i, col := range schema.Columns {
		values[i] = row[col]
	}
	return values
}
