package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	parcelTracker = "parcel_tracker"

	// Lookup metrics
	lookupsTotal   = "lookups_total"
	lookupDuration = "lookup_duration_seconds"

	// Broadcast metrics
	broadcastDeliveriesTotal = "broadcast_deliveries_total"

	// User metrics
	usersCount = "users"

	// Labels
	routeLabel    = "route"
	resultLabel   = "result"
	languageLabel = "language"
)

var lookupsTotalLabels = []string{
	routeLabel,
	resultLabel,
}

var lookupDurationLabels = []string{
	routeLabel,
}

var broadcastDeliveriesLabels = []string{
	resultLabel,
}

var usersCountLabels = []string{
	languageLabel,
}

/**
* Metrics definition
**/
var lookupsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: parcelTracker,
		Name:      lookupsTotal,
		Help:      "number of waybill lookups partitioned by route and result",
	},
	lookupsTotalLabels,
)

var lookupDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: parcelTracker,
		Name:      lookupDuration,
		Help:      "time spent fetching a route table and extracting the report",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
	},
	lookupDurationLabels,
)

var broadcastDeliveriesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: parcelTracker,
		Name:      broadcastDeliveriesTotal,
		Help:      "number of broadcast messages sent partitioned by result",
	},
	broadcastDeliveriesLabels,
)

var usersCountMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: parcelTracker,
		Name:      usersCount,
		Help:      "metrics to record the number of users per language",
	},
	usersCountLabels,
)

func IncreaseLookupsTotalMetric(route, result string) {
	labels := prometheus.Labels{
		routeLabel:  route,
		resultLabel: result,
	}
	lookupsTotalMetric.With(labels).Inc()
}

func ObserveLookupDurationMetric(route string, d time.Duration) {
	lookupDurationMetric.With(prometheus.Labels{routeLabel: route}).Observe(d.Seconds())
}

func IncreaseBroadcastDeliveriesMetric(result string) {
	broadcastDeliveriesTotalMetric.With(prometheus.Labels{resultLabel: result}).Inc()
}

func UpdateUsersCountMetric(language string, count int) {
	labels := prometheus.Labels{
		languageLabel: language,
	}
	usersCountMetric.With(labels).Set(float64(count))
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(lookupsTotalMetric)
	prometheus.MustRegister(lookupDurationMetric)
	prometheus.MustRegister(broadcastDeliveriesTotalMetric)
	prometheus.MustRegister(usersCountMetric)
	prometheus.MustRegister(totalUniqueUsersPerDayMetric)
}
