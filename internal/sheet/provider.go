package sheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/americanglobalgroup/parcel-tracker/internal/config"
)

const (
	ProviderGoogle   = "google"
	ProviderWorkbook = "workbook"

	// disabledID turns a route off without removing it from the configuration.
	disabledID = "-"
)

var ErrRouteNotConfigured = errors.New("route has no table configured")

// Provider fetches the current content of a route table.
type Provider interface {
	Fetch(ctx context.Context, route string) (Table, error)
}

// NewProvider builds the provider selected by cfg.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.Sheets.Provider {
	case ProviderGoogle:
		return NewGoogleSheetsProvider(ctx, cfg.Sheets.Credentials, cfg.Sheets.Routes)
	case ProviderWorkbook:
		return NewWorkbookProvider(cfg.Sheets.WorkbookDir, cfg.Sheets.Routes), nil
	default:
		return nil, fmt.Errorf("unknown sheets provider %q", cfg.Sheets.Provider)
	}
}

type routeLocator map[string]config.RouteSheet

func newRouteLocator(routes []config.RouteSheet) routeLocator {
	l := make(routeLocator, len(routes))
	for _, r := range routes {
		if r.SpreadsheetID == "" || r.SpreadsheetID == disabledID {
			continue
		}
		l[r.Route] = r
	}
	return l
}

func (l routeLocator) locate(route string) (config.RouteSheet, error) {
	r, ok := l[route]
	if !ok {
		return config.RouteSheet{}, fmt.Errorf("%w: %s", ErrRouteNotConfigured, route)
	}
	return r, nil
}
