// internal/app/sheets/client.go
package sheets

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Client layers the worksheet schemas over a raw Backend and exposes
// record-level operations. Rows are mapped by the sheet's actual header
// row, so callers are insulated from column order.
//
// The Client performs no caching; every call hits the backend. The cache
// layer sits in front of it.
type Client struct {
	b   Backend
	log *zap.Logger
}

// NewClient wraps a backend.
func NewClient(b Backend, logger *zap.Logger) *Client {
	return &Client{b: b, log: logger}
}

// Ping verifies the backend is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.b.Ping(ctx)
}

// EnsureSchemas creates missing worksheets and verifies the header row of
// existing ones, failing fast on any mismatch.
func (c *Client) EnsureSchemas(ctx context.Context) error {
	for _, s := range Schemas {
		if err := c.b.EnsureSheet(ctx, s.Sheet, s.Columns); err != nil {
			return fmt.Errorf("ensure sheet %q: %w", s.Sheet, err)
		}
	}
	return nil
}

// ReadAll returns every data row of the sheet in backend order.
func (c *Client) ReadAll(ctx context.Context, sheet string) ([]Row, error) {
	rows, _, err := c.readIndexed(ctx, sheet)
	return rows, err
}

// AppendRow appends one record, cells ordered per the sheet's schema.
func (c *Client) AppendRow(ctx context.Context, sheet string, row Row) error {
	schema, ok := SchemaFor(sheet)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSheet, sheet)
	}
	return c.b.Append(ctx, sheet, valuesFromRow(schema, row))
}

// UpdateByKey merges patch into the first row whose key column equals key
// and writes it back. Returns ErrRowNotFound when no row matches.
func (c *Client) UpdateByKey(ctx context.Context, sheet, key string, patch Row) error {
	schema, ok := SchemaFor(sheet)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSheet, sheet)
	}
	if schema.Key == "" {
		return fmt.Errorf("sheet %q has no key column", sheet)
	}
	return c.UpdateWhere(ctx, sheet, func(r Row) bool { return r[schema.Key] == key }, patch)
}

// UpdateWhere merges patch into every row matching the predicate. Returns
// ErrRowNotFound when nothing matches.
func (c *Client) UpdateWhere(ctx context.Context, sheet string, match func(Row) bool, patch Row) error {
	schema, _ := SchemaFor(sheet)
	rows, indexes, err := c.readIndexed(ctx, sheet)
	if err != nil {
		return err
	}
	updated := 0
	for i, row := range rows {
		if !match(row) {
			continue
		}
		merged := row.Merge(patch)
		if err := c.b.UpdateRow(ctx, sheet, indexes[i], valuesFromRow(schema, merged)); err != nil {
			return err
		}
		updated++
	}
	if updated == 0 {
		return ErrRowNotFound
	}
	return nil
}

// DeleteByKey removes the first row whose key column equals key.
func (c *Client) DeleteByKey(ctx context.Context, sheet, key string) error {
	schema, ok := SchemaFor(sheet)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSheet, sheet)
	}
	if schema.Key == "" {
		return fmt.Errorf("sheet %q has no key column", sheet)
	}
	n, err := c.DeleteWhere(ctx, sheet, func(r Row) bool { return r[schema.Key] == key })
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRowNotFound
	}
	return nil
}

// DeleteWhere removes every row matching the predicate and returns how
// many were removed. Rows are deleted bottom-up so earlier indexes stay
// valid while later rows shift.
func (c *Client) DeleteWhere(ctx context.Context, sheet string, match func(Row) bool) (int, error) {
	rows, indexes, err := c.readIndexed(ctx, sheet)
	if err != nil {
		return 0, err
	}
	var doomed []int
	for i, row := range rows {
		if match(row) {
			doomed = append(doomed, indexes[i])
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(doomed)))
	for _, idx := range doomed {
		if err := c.b.DeleteRow(ctx, sheet, idx); err != nil {
			return 0, err
		}
	}
	return len(doomed), nil
}

// readIndexed reads the grid and returns data rows plus their zero-based
// data-row indexes. Fully blank rows are skipped but their indexes are
// preserved so writes land on the right spreadsheet row.
func (c *Client) readIndexed(ctx context.Context, sheet string) ([]Row, []int, error) {
	if _, ok := SchemaFor(sheet); !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSheet, sheet)
	}
	grid, err := c.b.Values(ctx, sheet)
	if err != nil {
		return nil, nil, err
	}
	if len(grid) == 0 {
		return nil, nil, nil
	}
	header := grid[0]
	rows := make([]Row, 0, len(grid)-1)
	indexes := make([]int, 0, len(grid)-1)
	for i, values := range grid[1:] {
		if blankRow(values) {
			continue
		}
		rows = append(rows, rowFromValues(header, values))
		indexes = append(indexes, i)
	}
	return rows, indexes, nil
}

func blankRow(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}
