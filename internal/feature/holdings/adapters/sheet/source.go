package sheet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/xuri/excelize/v2"

	"fund_backend/internal/feature/holdings/usecase"
)

// Source downloads the published .xlsx holdings file and parses it into
// a rectangular grid of cell strings.
type Source struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Source implements the usecase interface.
var _ usecase.SheetSource = (*Source)(nil)

// NewSource creates a new Source with the given configuration and HTTP client.
func NewSource(cfg Config, client *http.Client) *Source {
	return &Source{cfg: cfg, client: client}
}

// FetchGrid downloads the spreadsheet and returns the first worksheet
// as rows of cell strings. A non-2xx upstream status is returned as an
// error carrying the status text, so it surfaces to the client as-is.
func (s *Source) FetchGrid(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holdings sheet: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("holdings sheet: upstream returned %s", res.Status)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("holdings sheet: read body: %w", err)
	}

	return parseGrid(raw)
}

// parseGrid opens the .xlsx bytes and returns the cells of the first
// worksheet. Rows keep their source order; trailing empty cells may be
// absent, which the extractor tolerates.
func parseGrid(raw []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("holdings sheet: open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("holdings sheet: workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("holdings sheet: read rows: %w", err)
	}
	return rows, nil
}
