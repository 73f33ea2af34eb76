package store

import (
	"context"
	"database/sql/driver"
	"regexp"
	"strings"
	"time"

	"github.com/ngrok/sqlmw"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	statementRegex = regexp.MustCompile(`^\s*(\w+)`)

	storeOpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "parcel_tracker",
		Subsystem: "store",
		Name:      "op_duration_milliseconds",
		Help:      "Time spent on a database operation",
		Buckets:   []float64{5, 25, 100, 300, 1000, 5000},
	}, []string{"op", "method"})

	storeOpTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "parcel_tracker",
		Subsystem: "store",
		Name:      "op_total",
		Help:      "Number of database operations",
	}, []string{"op"})
)

func init() {
	prometheus.MustRegister(storeOpDuration, storeOpTotal)
}

// metricInterceptor times the calls going through the postgres driver.
type metricInterceptor struct {
	sqlmw.NullInterceptor
}

func (mi *metricInterceptor) ConnectorConnect(ctx context.Context, c driver.Connector) (driver.Conn, error) {
	defer mi.observe("connector-connect", "")()
	return c.Connect(ctx)
}

func (mi *metricInterceptor) ConnPing(ctx context.Context, conn driver.Pinger) error {
	defer mi.observe("conn-ping", "")()
	return conn.Ping(ctx)
}

func (mi *metricInterceptor) ConnBeginTx(ctx context.Context, conn driver.ConnBeginTx, opts driver.TxOptions) (context.Context, driver.Tx, error) {
	defer mi.observe("conn-begin-tx", "")()
	tx, err := conn.BeginTx(ctx, opts)
	return ctx, tx, err
}

func (mi *metricInterceptor) ConnPrepareContext(ctx context.Context, conn driver.ConnPrepareContext, query string) (context.Context, driver.Stmt, error) {
	defer mi.observe("conn-prepare-context", statement(query, ""))()
	stmt, err := conn.PrepareContext(ctx, query)
	return ctx, stmt, err
}

func (mi *metricInterceptor) ConnExecContext(ctx context.Context, conn driver.ExecerContext, query string, args []driver.NamedValue) (driver.Result, error) {
	defer mi.observe("conn-exec-context", statement(query, ""))()
	return conn.ExecContext(ctx, query, args)
}

func (mi *metricInterceptor) ConnQueryContext(ctx context.Context, conn driver.QueryerContext, query string, args []driver.NamedValue) (context.Context, driver.Rows, error) {
	defer mi.observe("conn-query-context", statement(query, ""))()
	rows, err := conn.QueryContext(ctx, query, args)
	return ctx, rows, err
}

func (mi *metricInterceptor) StmtExecContext(ctx context.Context, stmt driver.StmtExecContext, query string, args []driver.NamedValue) (driver.Result, error) {
	defer mi.observe("stmt-exec-context", statement(query, ""))()
	return stmt.ExecContext(ctx, args)
}

func (mi *metricInterceptor) StmtQueryContext(ctx context.Context, stmt driver.StmtQueryContext, query string, args []driver.NamedValue) (context.Context, driver.Rows, error) {
	defer mi.observe("stmt-query-context", statement(query, ""))()
	rows, err := stmt.QueryContext(ctx, args)
	return ctx, rows, err
}

func (mi *metricInterceptor) TxCommit(ctx context.Context, tx driver.Tx) error {
	defer mi.observe("tx-commit", "")()
	return tx.Commit()
}

func (mi *metricInterceptor) TxRollback(ctx context.Context, tx driver.Tx) error {
	defer mi.observe("tx-rollback", "")()
	return tx.Rollback()
}

// observe counts op and returns the function recording its duration.
// An empty method reuses op.
func (mi *metricInterceptor) observe(op, method string) func() {
	if method == "" {
		method = op
	}
	storeOpTotal.WithLabelValues(op).Inc()
	start := time.Now()
	return func() {
		storeOpDuration.WithLabelValues(op, method).Observe(float64(time.Since(start).Milliseconds()))
	}
}

// statement returns the lower-cased leading keyword of query, e.g. "select".
func statement(query, fallback string) string {
	m := statementRegex.FindStringSubmatch(query)
	if len(m) < 2 {
		return fallback
	}
	return strings.ToLower(m[1])
}
