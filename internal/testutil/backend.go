package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/dalemusser/cohorthub/internal/app/sheets"
)

// FakeBackend is an in-memory sheets.Backend. It seeds every schema's
// header row up front and counts Values calls per sheet so cache tests
// can assert how often the backend was actually hit.
type FakeBackend struct {
	mu          sync.Mutex
	grids       map[string][][]string
	valuesCalls map[string]int
	failErr     error
}

// NewFakeBackend returns a backend with all worksheets present and empty.
func NewFakeBackend() *FakeBackend {
	b := &FakeBackend{
		grids:       make(map[string][][]string),
		valuesCalls: make(map[string]int),
	}
	for _, s := range sheets.Schemas {
		header := make([]string, len(s.Columns))
		copy(header, s.Columns)
		b.grids[s.Sheet] = [][]string{header}
	}
	return b
}

// FailWith makes every subsequent call return err until cleared with
// FailWith(nil).
func (b *FakeBackend) FailWith(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failErr = err
}

// ValuesCalls reports how many times Values was called for the sheet.
func (b *FakeBackend) ValuesCalls(sheet string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.valuesCalls[sheet]
}

// RowCount reports the number of data rows currently in the sheet.
func (b *FakeBackend) RowCount(sheet string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.grids[sheet]) - 1
}

func (b *FakeBackend) Ping(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failErr
}

func (b *FakeBackend) Values(ctx context.Context, sheet string) ([][]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.valuesCalls[sheet]++
	if b.failErr != nil {
		return nil, b.failErr
	}
	grid, ok := b.grids[sheet]
	if !ok {
		return nil, fmt.Errorf("no such sheet %q", sheet)
	}
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (b *FakeBackend) Append(ctx context.Context, sheet string, values []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failErr != nil {
		return b.failErr
	}
	grid, ok := b.grids[sheet]
	if !ok {
		return fmt.Errorf("no such sheet %q", sheet)
	}
	b.grids[sheet] = append(grid, append([]string(nil), values...))
	return nil
}

func (b *FakeBackend) UpdateRow(ctx context.Context, sheet string, index int, values []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failErr != nil {
		return b.failErr
	}
	grid, ok := b.grids[sheet]
	if !ok {
		return fmt.Errorf("no such sheet %q", sheet)
	}
	if index < 0 || index >= len(grid)-1 {
		return fmt.Errorf("row index %d out of range for %q", index, sheet)
	}
	grid[index+1] = append([]string(nil), values...)
	return nil
}

func (b *FakeBackend) DeleteRow(ctx context.Context, sheet string, index int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failErr != nil {
		return b.failErr
	}
	grid, ok := b.grids[sheet]
	if !ok {
		return fmt.Errorf("no such sheet %q", sheet)
	}
	if index < 0 || index >= len(grid)-1 {
		return fmt.Errorf("row index %d out of range for %q", index, sheet)
	}
	b.grids[sheet] = append(grid[:index+1], grid[index+2:]...)
	return nil
}

func (b *FakeBackend) EnsureSheet(ctx context.Context, sheet string, header []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failErr != nil {
		return b.failErr
	}
	if _, ok := b.grids[sheet]; !ok {
		b.grids[sheet] = [][]string{append([]string(nil), header...)}
	}
	return nil
}
