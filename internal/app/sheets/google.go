// internal/app/sheets/google.go
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
)

const (
	sheetsAPIBase = "https://sheets.googleapis.com/v4/spreadsheets"
	sheetsScope   = "https://www.googleapis.com/auth/spreadsheets"

	// retryBackoff is the wait before the adapter's single retry of a
	// transient call. The backend is rate limited; anything beyond one
	// bounded retry belongs to the caller.
	retryBackoff = 750 * time.Millisecond
)

// GoogleBackend talks to the Google Sheets v4 REST API using a service
// account. It implements Backend.
type GoogleBackend struct {
	spreadsheetID string
	baseURL       string
	httpc         *http.Client
	log           *zap.Logger

	mu       sync.Mutex
	sheetIDs map[string]int64 // worksheet title → numeric sheetId
}

// NewGoogleBackend authorizes with the service-account credentials JSON
// and returns a backend bound to one spreadsheet.
func NewGoogleBackend(ctx context.Context, credsJSON []byte, spreadsheetID string, logger *zap.Logger) (*GoogleBackend, error) {
	conf, err := google.JWTConfigFromJSON(credsJSON, sheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse google credentials: %w", err)
	}
	return &GoogleBackend{
		spreadsheetID: spreadsheetID,
		baseURL:       sheetsAPIBase,
		httpc:         conf.Client(ctx),
		log:           logger,
		sheetIDs:      map[string]int64{},
	}, nil
}

func (g *GoogleBackend) Ping(ctx context.Context) error {
	_, err := g.fetchSheetIDs(ctx)
	return err
}

func (g *GoogleBackend) Values(ctx context.Context, sheet string) ([][]string, error) {
	var out struct {
		Values [][]string `json:"values"`
	}
	path := fmt.Sprintf("/values/%s", url.PathEscape(sheet))
	if err := g.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Values, nil
}

func (g *GoogleBackend) Append(ctx context.Context, sheet string, values []string) error {
	path := fmt.Sprintf("/values/%s:append?valueInputOption=RAW&insertDataOption=INSERT_ROWS", url.PathEscape(sheet))
	body := map[string]any{"values": [][]string{values}}
	return g.call(ctx, http.MethodPost, path, body, nil)
}

func (g *GoogleBackend) UpdateRow(ctx context.Context, sheet string, index int, values []string) error {
	// Data row 0 lives on spreadsheet row 2, below the header.
	path := fmt.Sprintf("/values/%s?valueInputOption=RAW",
		url.PathEscape(fmt.Sprintf("%s!A%d", sheet, index+2)))
	body := map[string]any{"values": [][]string{values}}
	return g.call(ctx, http.MethodPut, path, body, nil)
}

func (g *GoogleBackend) DeleteRow(ctx context.Context, sheet string, index int) error {
	id, err := g.sheetID(ctx, sheet)
	if err != nil {
		return err
	}
	body := map[string]any{
		"requests": []any{map[string]any{
			"deleteDimension": map[string]any{
				"range": map[string]any{
					"sheetId":    id,
					"dimension":  "ROWS",
					"startIndex": index + 1,
					"endIndex":   index + 2,
				},
			},
		}},
	}
	return g.call(ctx, http.MethodPost, ":batchUpdate", body, nil)
}

func (g *GoogleBackend) EnsureSheet(ctx context.Context, sheet string, header []string) error {
	ids, err := g.fetchSheetIDs(ctx)
	if err != nil {
		return err
	}
	if _, ok := ids[sheet]; !ok {
		body := map[string]any{
			"requests": []any{map[string]any{
				"addSheet": map[string]any{
					"properties": map[string]any{"title": sheet},
				},
			}},
		}
		if err := g.call(ctx, http.MethodPost, ":batchUpdate", body, nil); err != nil {
			return err
		}
		g.mu.Lock()
		g.sheetIDs = nil // force re-fetch; we don't parse the addSheet reply
		g.mu.Unlock()
		if err := g.Append(ctx, sheet, header); err != nil {
			return err
		}
		g.log.Info("created worksheet", zap.String("sheet", sheet))
		return nil
	}

	grid, err := g.Values(ctx, sheet)
	if err != nil {
		return err
	}
	if len(grid) == 0 {
		return g.Append(ctx, sheet, header)
	}
	got := grid[0]
	if len(got) != len(header) {
		return fmt.Errorf("sheet %q: header has %d columns, want %d", sheet, len(got), len(header))
	}
	for i := range header {
		if got[i] != header[i] {
			return fmt.Errorf("sheet %q: header column %d is %q, want %q", sheet, i, got[i], header[i])
		}
	}
	return nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| HTTP plumbing                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (g *GoogleBackend) sheetID(ctx context.Context, sheet string) (int64, error) {
	ids, err := g.fetchSheetIDs(ctx)
	if err != nil {
		return 0, err
	}
	id, ok := ids[sheet]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSheet, sheet)
	}
	return id, nil
}

func (g *GoogleBackend) fetchSheetIDs(ctx context.Context) (map[string]int64, error) {
	g.mu.Lock()
	cached := g.sheetIDs
	g.mu.Unlock()
	if len(cached) > 0 {
		return cached, nil
	}

	var out struct {
		Sheets []struct {
			Properties struct {
				SheetID int64  `json:"sheetId"`
				Title   string `json:"title"`
			} `json:"properties"`
		} `json:"sheets"`
	}
	if err := g.call(ctx, http.MethodGet, "?fields=sheets.properties", nil, &out); err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(out.Sheets))
	for _, s := range out.Sheets {
		ids[s.Properties.Title] = s.Properties.SheetID
	}
	g.mu.Lock()
	g.sheetIDs = ids
	g.mu.Unlock()
	return ids, nil
}

// call performs one API request with a single retry on transient failure.
// path is appended to the spreadsheet URL and may carry a query string or
// a ":method" suffix.
func (g *GoogleBackend) call(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	endpoint := g.baseURL + "/" + g.spreadsheetID + path

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			g.log.Warn("retrying sheets call",
				zap.String("path", path), zap.Error(lastErr))
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return unavailable(ctx.Err())
			}
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := g.httpc.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			defer resp.Body.Close()
			if out == nil {
				io.Copy(io.Discard, resp.Body)
				return nil
			}
			return json.NewDecoder(resp.Body).Decode(out)
		}

		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		lastErr = fmt.Errorf("sheets api %s %s: %s: %s", method, path, resp.Status, snippet)
		if !transientStatus(resp.StatusCode) {
			return lastErr
		}
	}
	return unavailable(lastErr)
}

// transientStatus reports whether a response status is worth one retry:
// quota exhaustion or a server-side failure.
func transientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}
