package sheet

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/americanglobalgroup/parcel-tracker/internal/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheetsProvider reads the route tables from Google Sheets with a
// service account.
type GoogleSheetsProvider struct {
	values  *sheets.SpreadsheetsValuesService
	locator routeLocator
}

// NewGoogleSheetsProvider builds a provider from the base64 encoded service
// account key.
func NewGoogleSheetsProvider(ctx context.Context, credentials string, routes []config.RouteSheet) (*GoogleSheetsProvider, error) {
	if credentials == "" {
		return nil, errors.New("google credentials are not set")
	}

	key, err := base64.StdEncoding.DecodeString(credentials)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode google credentials")
	}

	return newGoogleSheetsProvider(ctx, routes,
		option.WithCredentialsJSON(key),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
}

func newGoogleSheetsProvider(ctx context.Context, routes []config.RouteSheet, opts ...option.ClientOption) (*GoogleSheetsProvider, error) {
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheets client")
	}

	return &GoogleSheetsProvider{
		values:  srv.Spreadsheets.Values,
		locator: newRouteLocator(routes),
	}, nil
}

func (p *GoogleSheetsProvider) Fetch(ctx context.Context, route string) (Table, error) {
	loc, err := p.locator.locate(route)
	if err != nil {
		return Table{}, err
	}

	resp, err := p.values.Get(loc.SpreadsheetID, a1Sheet(loc.SheetName)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return Table{}, errors.Wrapf(err, "failed to read sheet %q of spreadsheet %s", loc.SheetName, loc.SpreadsheetID)
	}

	zap.S().Named("sheet").Debugw("fetched table", "route", route, "rows", len(resp.Values))

	return NewTable(stringify(resp.Values)), nil
}

// a1Sheet quotes a sheet name for use as an A1 range, so names with spaces
// or apostrophes select the whole sheet.
func a1Sheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func stringify(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		row := make([]string, len(v))
		for i, cell := range v {
			if cell == nil {
				continue
			}
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows
}
