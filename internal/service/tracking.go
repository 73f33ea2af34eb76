package service

import (
	"context"
	"errors"
	"time"

	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"github.com/americanglobalgroup/parcel-tracker/internal/sheet"
	"github.com/americanglobalgroup/parcel-tracker/internal/tracking"
	"github.com/americanglobalgroup/parcel-tracker/pkg/metrics"
	"go.uber.org/zap"
)

const defaultLookupTimeout = 20 * time.Second

// LookupStatus tells how a waybill lookup ended.
type LookupStatus int

const (
	// LookupFound means a row matched and the extractor produced an outcome.
	LookupFound LookupStatus = iota
	LookupNotFound
	LookupMissingColumn
	LookupRouteInactive
	LookupFailed
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	case LookupMissingColumn:
		return "missing_column"
	case LookupRouteInactive:
		return "route_inactive"
	case LookupFailed:
		return "error"
	default:
		return "unknown"
	}
}

type LookupResult struct {
	Status LookupStatus
	Route  tracking.Route
	Code   string
	// Outcome is set when Status is LookupFound.
	Outcome tracking.Outcome
}

// TrackingService answers waybill lookups: it fetches the route table, finds
// the row of the waybill and renders its status report.
type TrackingService struct {
	provider  sheet.Provider
	extractor *tracking.Extractor
	timeout   time.Duration
}

type TrackingServiceOption func(s *TrackingService)

func WithLookupTimeout(timeout time.Duration) TrackingServiceOption {
	return func(s *TrackingService) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

func NewTrackingService(provider sheet.Provider, extractor *tracking.Extractor, opts ...TrackingServiceOption) *TrackingService {
	s := &TrackingService{
		provider:  provider,
		extractor: extractor,
		timeout:   defaultLookupTimeout,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Lookup returns the report of the parcel with waybill code on route. The
// error is set only when the route table could not be fetched, and it is an
// *ErrLookupFailed.
func (s *TrackingService) Lookup(ctx context.Context, route tracking.Route, code string, lang i18n.Language) (LookupResult, error) {
	start := time.Now()
	result, err := s.lookup(ctx, route, code, lang)

	label := result.Status.String()
	if result.Status == LookupFound && !result.Outcome.OK() {
		label = result.Outcome.Result()
	}
	metrics.IncreaseLookupsTotalMetric(route.String(), label)
	metrics.ObserveLookupDurationMetric(route.String(), time.Since(start))

	zap.S().Named("tracking_service").Infow("waybill lookup", "route", route, "code", code, "result", label, "duration", time.Since(start))

	return result, err
}

func (s *TrackingService) lookup(ctx context.Context, route tracking.Route, code string, lang i18n.Language) (LookupResult, error) {
	result := LookupResult{Route: route, Code: code}

	if _, ok := s.extractor.Rules().Rules(route); !ok {
		result.Status = LookupRouteInactive
		return result, nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	table, err := s.provider.Fetch(fetchCtx, route.String())
	if err != nil {
		if errors.Is(err, sheet.ErrRouteNotConfigured) {
			result.Status = LookupRouteInactive
			return result, nil
		}
		zap.S().Named("tracking_service").Errorw("failed to fetch route table", "route", route, "error", err)
		result.Status = LookupFailed
		return result, NewErrLookupFailed(route.String(), err)
	}

	row, found, err := table.Find(code)
	if err != nil {
		result.Status = LookupMissingColumn
		return result, nil
	}
	if !found {
		result.Status = LookupNotFound
		return result, nil
	}

	result.Status = LookupFound
	result.Outcome = s.extractor.Extract(route, tracking.Row(row), lang)
	return result, nil
}
