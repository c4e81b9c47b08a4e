package sheets

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/poultryfarm/internal/config"
)

// Sheet is the slice of the Sheets API the report exporter needs.
type Sheet interface {
	AppendRow(ctx context.Context, values []interface{}) error
	KeyColumn(ctx context.Context) ([]string, error)
}

// ReportSheet is a Sheet bound to one range of one spreadsheet.
type ReportSheet struct {
	values        *sheetsapi.SpreadsheetsValuesService
	spreadsheetID string
	sheetRange    string
	logger        *zap.Logger
}

// NewReportSheet authenticates with the service account credentials file and
// binds the sheet to cfg.ReportRange. Extra client options are appended after
// the credentials.
func NewReportSheet(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger, opts ...option.ClientOption) (*ReportSheet, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ReportRange == "" {
		return nil, fmt.Errorf("report range must not be empty")
	}

	clientOpts := []option.ClientOption{option.WithScopes(sheetsapi.SpreadsheetsScope)}
	if cfg.CredentialsPath != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.CredentialsPath))
	}
	clientOpts = append(clientOpts, opts...)

	service, err := sheetsapi.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &ReportSheet{
		values:        service.Spreadsheets.Values,
		spreadsheetID: cfg.SpreadsheetID,
		sheetRange:    cfg.ReportRange,
		logger:        logger,
	}, nil
}

// AppendRow adds values as a new row after the last populated row of the range.
func (s *ReportSheet) AppendRow(ctx context.Context, values []interface{}) error {
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	_, err := s.values.Append(s.spreadsheetID, s.sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row into range %s: %w", s.sheetRange, err)
	}

	s.logger.Debug("row appended to sheet", zap.String("range", s.sheetRange))
	return nil
}

// KeyColumn returns the trimmed cells of the range's first column.
func (s *ReportSheet) KeyColumn(ctx context.Context) ([]string, error) {
	keyRange := firstColumn(s.sheetRange)

	resp, err := s.values.Get(s.spreadsheetID, keyRange).
		MajorDimension("COLUMNS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", keyRange, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		keys = append(keys, strings.TrimSpace(fmt.Sprint(cell)))
	}
	return keys, nil
}

// firstColumn narrows "Sheet!A:J" to "Sheet!A:A".
func firstColumn(sheetRange string) string {
	sheet, cells, found := strings.Cut(sheetRange, "!")
	if !found {
		cells, sheet = sheet, ""
	}
	col := strings.TrimRight(strings.SplitN(cells, ":", 2)[0], "0123456789")
	if col == "" {
		col = "A"
	}
	if sheet == "" {
		return col + ":" + col
	}
	return sheet + "!" + col + ":" + col
}
