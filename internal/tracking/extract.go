package tracking

import (
	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"go.uber.org/zap"
)

// Report is a rendered status report.
type Report struct {
	Text            string
	ShowSocialLinks bool
}

// Failure is a localized, non-fatal extraction error.
type Failure struct {
	Reason  FaultKind
	Message string
}

// Outcome is the result of one extraction. Exactly one of Report and Failure is set.
type Outcome struct {
	Report  *Report
	Failure *Failure
}

func (o Outcome) OK() bool {
	return o.Report != nil
}

// Text returns the text to send to the user.
func (o Outcome) Text() string {
	if o.Report != nil {
		return o.Report.Text
	}
	if o.Failure != nil {
		return o.Failure.Message
	}
	return ""
}

// Result names the outcome for logs and metrics.
func (o Outcome) Result() string {
	if o.Failure != nil {
		return o.Failure.Reason.String()
	}
	return "report"
}

type ExtractorOption func(e *Extractor)

// WithVerboseErrors controls whether the detail of unexpected faults is
// appended to the message shown to the user.
func WithVerboseErrors(verbose bool) ExtractorOption {
	return func(e *Extractor) {
		e.verbose = verbose
	}
}

// Extractor turns route table rows into status reports. It holds no mutable
// state and is safe for concurrent use.
type Extractor struct {
	rules   *RuleSet
	catalog *i18n.Catalog
	verbose bool
}

func NewExtractor(rules *RuleSet, catalog *i18n.Catalog, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		rules:   rules,
		catalog: catalog,
		verbose: true,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Rules returns the rule set the extractor reads rows with.
func (e *Extractor) Rules() *RuleSet {
	return e.rules
}

// Extract renders the report of row for route in lang.
func (e *Extractor) Extract(route Route, row Row, lang i18n.Language) Outcome {
	rules, ok := e.rules.Rules(route)
	if !ok {
		return Outcome{Failure: &Failure{
			Reason:  UnsupportedRoute,
			Message: e.catalog.Message(i18n.KeyUnsupportedRoute, lang),
		}}
	}

	return e.guard(route, row, lang, func() Outcome {
		return Outcome{Report: &Report{
			Text:            e.render(rules, row, lang),
			ShowSocialLinks: true,
		}}
	})
}

// guard runs fn and converts any fault raised while assembling a report into a Failure.
func (e *Extractor) guard(route Route, row Row, lang i18n.Language, fn func() Outcome) (out Outcome) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		kind, detail := classifyFault(r)
		zap.S().Named("tracking").Errorw("failed to extract parcel status",
			"route", route, "fault", kind.String(), "error", detail, "row", []string(row))

		message := e.catalog.Message(i18n.KeyError, lang)
		if kind == Unexpected && e.verbose {
			message += " " + detail
		}
		out = Outcome{Failure: &Failure{Reason: kind, Message: message}}
	}()

	return fn()
}

func (e *Extractor) render(rules RouteRules, row Row, lang i18n.Language) string {
	cols := rules.Columns

	orderDate := row.Cell(cols.OrderDate)
	homeDelivery := InterpretHomeDelivery(row.Cell(cols.HomeDelivery), rules.HomeDeliveryYes)
	status := row.Cell(cols.Status)
	estimatedDelivery := row.Cell(cols.EstimatedDelivery)
	received := InterpretReceived(row.Cell(cols.Received), rules.Received)
	note := row.Cell(cols.Note)

	b := &reportBuilder{}
	b.field(e.catalog.Message(i18n.KeyOrderDate, lang), orderDate)
	if homeDelivery {
		b.line(e.catalog.Message(i18n.KeyHomeDeliveryOrdered, lang))
	} else {
		b.line(e.catalog.Message(i18n.KeyHomeDeliveryNotOrder, lang))
	}

	if received {
		receivedNote := ""
		if rules.HasReceivedNote() {
			receivedNote = row.Cell(cols.ReceivedNote)
		}
		b.field(e.catalog.Message(i18n.KeyReceivedByCustomer, lang), receivedNote)
	} else {
		// The primary language is the language of the tables, so the status is shown as entered.
		displayStatus := status
		if lang == i18n.Secondary {
			displayStatus = rules.TranslateStatus(status)
		}
		b.field(e.catalog.Message(i18n.KeyParcelStatus, lang), displayStatus)
		b.field(e.catalog.Message(officeKey(rules.Office), lang), estimatedDelivery)
	}

	// Operator notes are shown verbatim in every language.
	if note != "" {
		b.note(note)
	}

	return b.String()
}

func officeKey(o Office) i18n.Key {
	if o == AmericanOffice {
		return i18n.KeyEstimatedDeliveryUS
	}
	return i18n.KeyEstimatedDeliveryAM
}
