package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"github.com/americanglobalgroup/parcel-tracker/internal/service"
	"github.com/americanglobalgroup/parcel-tracker/internal/tracking"
	"github.com/americanglobalgroup/parcel-tracker/pkg/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"
)

const (
	textFormat = "text"
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var legalOutputTypes = []string{textFormat, jsonFormat, yamlFormat}

type LookupOptions struct {
	Route    string
	Codes    []string
	Language string
	Output   string

	route tracking.Route
}

// lookupEntry is the printable result of one waybill.
type lookupEntry struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Report string `json:"report,omitempty"`
}

func DefaultLookupOptions() *LookupOptions {
	return &LookupOptions{
		Language: string(i18n.Primary),
		Output:   textFormat,
	}
}

func NewCmdLookup() *cobra.Command {
	o := DefaultLookupOptions()
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Print the status report of one or more waybills",
		Example: `  tracker-bot lookup --route "Air USA to AM" --code AM00017664US --lang en
  tracker-bot lookup --route "Ocean USA to AM" --code AM00017664US --code AM00017665US -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *LookupOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Route, "route", "r", o.Route, fmt.Sprintf("Route code. One of: (%s).", strings.Join(funk.Map(tracking.Routes(), tracking.Route.String).([]string), ", ")))
	fs.StringSliceVar(&o.Codes, "code", o.Codes, "Waybill code, repeat the flag for several codes")
	fs.StringVarP(&o.Language, "lang", "l", o.Language, "Report language: hy or en")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *LookupOptions) Validate(args []string) error {
	route, ok := tracking.ParseRoute(o.Route)
	if !ok {
		return fmt.Errorf("unknown route %q", o.Route)
	}
	o.route = route

	if len(o.Codes) == 0 {
		return fmt.Errorf("at least one --code is required")
	}
	if !funk.ContainsString(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

func (o *LookupOptions) Run(ctx context.Context, out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	undo := log.Setup(cfg.Service.LogLevel)
	defer undo()

	tracker, provider, extractor, err := newTracker(ctx, cfg)
	if err != nil {
		return err
	}
	lang := i18n.ParseLanguage(o.Language)

	var entries []lookupEntry
	if len(o.Codes) == 1 {
		result, err := tracker.Lookup(ctx, o.route, o.Codes[0], lang)
		if err != nil {
			return err
		}
		entries = append(entries, lookupEntry{Code: result.Code, Status: result.Status.String(), Report: result.Outcome.Text()})
	} else {
		// several codes: fetch the table once and index it
		table, err := provider.Fetch(ctx, o.route.String())
		if err != nil {
			return err
		}
		index, err := table.Index()
		if err != nil {
			return err
		}
		for _, code := range o.Codes {
			code = strings.TrimSpace(code)
			row, found := index[code]
			if !found {
				entries = append(entries, lookupEntry{Code: code, Status: service.LookupNotFound.String()})
				continue
			}
			outcome := extractor.Extract(o.route, tracking.Row(row), lang)
			entries = append(entries, lookupEntry{Code: code, Status: service.LookupFound.String(), Report: outcome.Text()})
		}
	}

	return printEntries(out, o.Output, entries)
}

func printEntries(out io.Writer, format string, entries []lookupEntry) error {
	switch format {
	case jsonFormat:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case yamlFormat:
		data, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	for _, e := range entries {
		fmt.Fprintf(out, "== %s (%s)\n", e.Code, e.Status)
		if e.Report != "" {
			fmt.Fprintln(out, e.Report)
		}
	}
	return nil
}
