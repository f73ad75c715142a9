// internal/app/sheetcache/cache.go

// Package sheetcache is a per-sheet TTL snapshot cache in front of the
// sheets client. It exists to protect the remote backend's rate limit:
// reads serve a snapshot until it ages out or a write from this process
// invalidates it. Invalidation is per sheet, not per row; data volumes
// are small enough that coarse invalidation is the simpler correct thing.
//
// No cross-process coherence is attempted. If another process writes the
// spreadsheet, this process may serve rows up to one TTL stale. That is a
// documented tradeoff, not a bug.
package sheetcache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/sheets"
)

// DefaultTTL bounds snapshot staleness. Five minutes, matching the
// refresh interval the portal has always used.
const DefaultTTL = 5 * time.Minute

// Cache is the read-through, write-through front for the sheets client.
// All sheet traffic from the stores goes through here.
type Cache struct {
	client    *sheets.Client
	snapshots *ttlcache.Cache[string, []sheets.Row]
	log       *zap.Logger
}

// New builds a cache over client with the given snapshot TTL. A ttl of 0
// falls back to DefaultTTL.
func New(client *sheets.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	snapshots := ttlcache.New(
		ttlcache.WithTTL[string, []sheets.Row](ttl),
		ttlcache.WithDisableTouchOnHit[string, []sheets.Row](),
	)
	go snapshots.Start()
	return &Cache{client: client, snapshots: snapshots, log: logger}
}

// Stop halts the background expiry loop.
func (c *Cache) Stop() {
	c.snapshots.Stop()
}

// Rows returns the sheet's rows, served from the snapshot when it is
// younger than the TTL, otherwise refreshed from the backend.
func (c *Cache) Rows(ctx context.Context, sheet string) ([]sheets.Row, error) {
	if item := c.snapshots.Get(sheet); item != nil {
		return item.Value(), nil
	}
	return c.Refresh(ctx, sheet)
}

// Refresh bypasses the snapshot, reads the sheet from the backend, and
// replaces the snapshot. Use it for read-modify-write decisions that must
// not act on stale rows.
func (c *Cache) Refresh(ctx context.Context, sheet string) ([]sheets.Row, error) {
	rows, err := c.client.ReadAll(ctx, sheet)
	if err != nil {
		return nil, err
	}
	c.snapshots.Set(sheet, rows, ttlcache.DefaultTTL)
	return rows, nil
}

// Invalidate drops the sheet's snapshot so the next read refreshes.
// Called after every write this process performs, and exposed for manual
// refresh triggers.
func (c *Cache) Invalidate(sheet string) {
	c.snapshots.Delete(sheet)
}

// InvalidateAll drops every snapshot.
func (c *Cache) InvalidateAll() {
	c.snapshots.DeleteAll()
	c.log.Debug("sheet cache cleared")
}

/*─────────────────────────────────────────────────────────────────────────────*
| Write-through operations                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// Append writes one row through to the backend and invalidates the sheet.
func (c *Cache) Append(ctx context.Context, sheet string, row sheets.Row) error {
	if err := c.client.AppendRow(ctx, sheet, row); err != nil {
		return err
	}
	c.Invalidate(sheet)
	return nil
}

// UpdateByKey patches the keyed row through to the backend and
// invalidates the sheet.
func (c *Cache) UpdateByKey(ctx context.Context, sheet, key string, patch sheets.Row) error {
	if err := c.client.UpdateByKey(ctx, sheet, key, patch); err != nil {
		return err
	}
	c.Invalidate(sheet)
	return nil
}

// UpdateWhere patches all matching rows and invalidates the sheet. The
// sheet is invalidated even on failure: a multi-row patch can die
// partway, leaving backend state the snapshot no longer reflects.
func (c *Cache) UpdateWhere(ctx context.Context, sheet string, match func(sheets.Row) bool, patch sheets.Row) error {
	err := c.client.UpdateWhere(ctx, sheet, match, patch)
	c.Invalidate(sheet)
	return err
}

// DeleteByKey removes the keyed row and invalidates the sheet.
func (c *Cache) DeleteByKey(ctx context.Context, sheet, key string) error {
	if err := c.client.DeleteByKey(ctx, sheet, key); err != nil {
		return err
	}
	c.Invalidate(sheet)
	return nil
}

// DeleteWhere removes all matching rows and invalidates the sheet when
// anything was removed or the delete failed partway.
func (c *Cache) DeleteWhere(ctx context.Context, sheet string, match func(sheets.Row) bool) (int, error) {
	n, err := c.client.DeleteWhere(ctx, sheet, match)
	if n > 0 || err != nil {
		c.Invalidate(sheet)
	}
	return n, err
}
