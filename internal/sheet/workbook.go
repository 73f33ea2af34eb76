package sheet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/americanglobalgroup/parcel-tracker/internal/config"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// WorkbookProvider reads the route tables from local xlsx files, one per
// route, named after the spreadsheet id: <dir>/<spreadsheet id>.xlsx.
type WorkbookProvider struct {
	dir     string
	locator routeLocator
}

func NewWorkbookProvider(dir string, routes []config.RouteSheet) *WorkbookProvider {
	return &WorkbookProvider{
		dir:     dir,
		locator: newRouteLocator(routes),
	}
}

// Path returns the file holding the table of route.
func (p *WorkbookProvider) Path(route string) (string, error) {
	loc, err := p.locator.locate(route)
	if err != nil {
		return "", err
	}
	return filepath.Join(p.dir, loc.SpreadsheetID+".xlsx"), nil
}

func (p *WorkbookProvider) Fetch(ctx context.Context, route string) (Table, error) {
	loc, err := p.locator.locate(route)
	if err != nil {
		return Table{}, err
	}
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}

	path := filepath.Join(p.dir, loc.SpreadsheetID+".xlsx")
	f, err := os.Open(path)
	if err != nil {
		return Table{}, errors.Wrapf(err, "failed to open workbook of route %s", route)
	}
	defer f.Close()

	workbook, err := excelize.OpenReader(f)
	if err != nil {
		return Table{}, errors.Wrapf(err, "failed to read workbook %s", path)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(loc.SheetName)
	if err != nil {
		return Table{}, errors.Wrapf(err, "failed to read sheet %q of %s", loc.SheetName, path)
	}

	return NewTable(rows), nil
}

// WriteWorkbook stores values as the sheet named sheetName of a new workbook at path.
func WriteWorkbook(path string, sheetName string, values [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	for r, row := range values {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheetName, cell, v); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	return f.SaveAs(path)
}
