package sheet_test

import (
	"context"
	"path/filepath"

	"github.com/americanglobalgroup/parcel-tracker/internal/config"
	"github.com/americanglobalgroup/parcel-tracker/internal/sheet"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("workbook provider", func() {
	var (
		dir    string
		routes []config.RouteSheet
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		routes = []config.RouteSheet{
			{Route: "Air USA to AM", SpreadsheetID: "air-inbound", SheetName: "Sheet1"},
			{Route: "Ocean USA to AM", SpreadsheetID: "-", SheetName: "Data"},
		}

		err := sheet.WriteWorkbook(filepath.Join(dir, "air-inbound.xlsx"), "Sheet1", [][]string{
			{"date", "waybill"},
			{"2024-04-20", "AM00017664US"},
		})
		Expect(err).To(BeNil())
	})

	It("reads the sheet of the route", func() {
		p := sheet.NewWorkbookProvider(dir, routes)

		table, err := p.Fetch(context.TODO(), "Air USA to AM")
		Expect(err).To(BeNil())
		Expect(table.Header).To(Equal([]string{"date", "waybill"}))

		row, found, err := table.Find("AM00017664US")
		Expect(err).To(BeNil())
		Expect(found).To(BeTrue())
		Expect(row[0]).To(Equal("2024-04-20"))
	})

	It("fails for routes without a table", func() {
		p := sheet.NewWorkbookProvider(dir, routes)

		_, err := p.Fetch(context.TODO(), "Ocean USA to AM")
		Expect(err).To(MatchError(sheet.ErrRouteNotConfigured))

		_, err = p.Fetch(context.TODO(), "Air AM to USA")
		Expect(err).To(MatchError(sheet.ErrRouteNotConfigured))
	})

	It("fails when the sheet is missing", func() {
		routes[0].SheetName = "List"
		p := sheet.NewWorkbookProvider(dir, routes)

		_, err := p.Fetch(context.TODO(), "Air USA to AM")
		Expect(err).NotTo(BeNil())
		Expect(err).NotTo(MatchError(sheet.ErrRouteNotConfigured))
	})

	It("fails when the workbook is missing", func() {
		p := sheet.NewWorkbookProvider(GinkgoT().TempDir(), routes)

		_, err := p.Fetch(context.TODO(), "Air USA to AM")
		Expect(err).NotTo(BeNil())
	})

	It("builds the configured provider", func() {
		cfg := config.NewDefault()
		cfg.Sheets.WorkbookDir = dir

		p, err := sheet.NewProvider(context.TODO(), cfg)
		Expect(err).To(BeNil())
		Expect(p).To(BeAssignableToTypeOf(&sheet.WorkbookProvider{}))

		cfg.Sheets.Provider = "ftp"
		_, err = sheet.NewProvider(context.TODO(), cfg)
		Expect(err).NotTo(BeNil())

		cfg.Sheets.Provider = sheet.ProviderGoogle
		cfg.Sheets.Credentials = ""
		_, err = sheet.NewProvider(context.TODO(), cfg)
		Expect(err).NotTo(BeNil())
	})
})
