package sheets

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// Source is the remote table source the cache manager fetches from. Both
// methods return the raw worksheet grid, row-major, formatted as displayed.
type Source interface {
	ScheduleGrid(ctx context.Context) ([][]string, error)
	BookersGrid(ctx context.Context) ([][]string, error)
}

// SheetSource reads the schedule and bookers worksheets of a single Google
// spreadsheet via the Sheets API.
type SheetSource struct {
	srv           *sheetsv4.Service
	spreadsheetID string
	scheduleRange string
	bookersRange  string
}

// NewSheetSource builds a read-only Sheets client from the configured
// service account credentials file.
func NewSheetSource(ctx context.Context) (*SheetSource, error) {
	creds, err := os.ReadFile(viper.GetString("sheets.credentials"))
	if err != nil {
		return nil, fmt.Errorf("reading sheets credentials: %w", err)
	}
	conf, err := google.JWTConfigFromJSON(creds, sheetsv4.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing sheets credentials: %w", err)
	}
	srv, err := sheetsv4.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}
	return &SheetSource{
		srv:           srv,
		spreadsheetID: viper.GetString("sheets.id"),
		scheduleRange: viper.GetString("sheets.schedule_worksheet"),
		bookersRange:  viper.GetString("sheets.bookers_worksheet"),
	}, nil
}

// ScheduleGrid fetches every cell of the schedule worksheet.
func (s *SheetSource) ScheduleGrid(ctx context.Context) ([][]string, error) {
	return s.grid(ctx, s.scheduleRange)
}

// BookersGrid fetches every cell of the bookers worksheet.
func (s *SheetSource) BookersGrid(ctx context.Context) ([][]string, error) {
	return s.grid(ctx, s.bookersRange)
}

func (s *SheetSource) grid(ctx context.Context, readRange string) ([][]string, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, readRange).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	grid := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, value := range row {
			cells = append(cells, fmt.Sprint(value))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
