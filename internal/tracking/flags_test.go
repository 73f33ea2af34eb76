package tracking_test

import (
	"github.com/americanglobalgroup/parcel-tracker/internal/tracking"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("cells", func() {
	It("returns trimmed text or empty for missing positions", func() {
		row := tracking.Row{"  a ", "b"}
		Expect(row.Cell(0)).To(Equal("a"))
		Expect(row.Cell(1)).To(Equal("b"))
		Expect(row.Cell(2)).To(BeEmpty())
		Expect(row.Cell(-1)).To(BeEmpty())
		Expect(tracking.Row(nil).Cell(5)).To(BeEmpty())
	})

	DescribeTable("home delivery",
		func(raw string, allowYes bool, expected bool) {
			Expect(tracking.InterpretHomeDelivery(raw, allowYes)).To(Equal(expected))
		},
		Entry("zero", "0", true, false),
		Entry("positive", "5", true, true),
		Entry("positive without YES fallback", "5", false, true),
		Entry("negative", "-2", true, false),
		Entry("YES on inbound routes", "YES", true, true),
		Entry("lower case yes on inbound routes", "yes", true, true),
		Entry("YES on the outbound route", "YES", false, false),
		Entry("yes on the outbound route", "yes", false, false),
		Entry("empty", "", true, false),
		Entry("garbage", "maybe", true, false),
		Entry("decimal", "1.5", false, false),
		Entry("padded number", " 2 ", false, true),
		Entry("explicit plus sign", "+3", false, true),
		Entry("leading zeros", "007", false, true),
		Entry("number beyond int64", "99999999999999999999", false, true),
		Entry("negative number beyond int64", "-99999999999999999999", true, false),
		Entry("grouped digits", "1_000", false, true),
		Entry("doubled underscore", "1__0", true, false),
		Entry("leading underscore", "_1", true, false),
		Entry("trailing underscore", "1_", true, false),
		Entry("two signs", "+-1", true, false),
		Entry("sign only", "-", true, false),
	)

	DescribeTable("received flag",
		func(raw string, expected bool) {
			Expect(tracking.InterpretReceived(raw, tracking.DefaultReceivedSentinels())).To(Equal(expected))
		},
		Entry("true", "true", true),
		Entry("TRUE", "TRUE", true),
		Entry("Yes", "Yes", true),
		Entry("one", "1", true),
		Entry("check mark", "✓", true),
		Entry("padded", "  yes ", true),
		Entry("no", "no", false),
		Entry("false", "false", false),
		Entry("empty", "", false),
		Entry("zero", "0", false),
		Entry("other mark", "✔", false),
	)

	Context("status translation", func() {
		rules := tracking.DefaultRules(nil)

		It("translates known statuses of the route", func() {
			Expect(rules.TranslateStatus(tracking.OceanInbound, "ՀՀ մաքսային տերմինալ")).To(Equal("In the Armenian Customs Office"))
		})

		It("returns unknown statuses unchanged", func() {
			for _, route := range tracking.Routes() {
				Expect(rules.TranslateStatus(route, "Customs Hold X")).To(Equal("Customs Hold X"))
				Expect(rules.TranslateStatus(route, "")).To(Equal(""))
			}
		})

		It("does not normalize the status before lookup", func() {
			Expect(rules.TranslateStatus(tracking.AirInbound, " ՀՀ գրասենյակում")).To(Equal(" ՀՀ գրասենյակում"))
		})

		It("keeps route tables apart", func() {
			Expect(rules.TranslateStatus(tracking.AirInbound, "Ուղարկված ԱՄՆ-ից")).To(Equal("Ուղարկված ԱՄՆ-ից"))
			Expect(rules.TranslateStatus(tracking.OceanInbound, "Ուղարկված ԱՄՆ-ից")).To(Equal("Sent from the USA"))
		})

		It("returns the status unchanged for unknown routes", func() {
			Expect(rules.TranslateStatus(tracking.Route("x"), "ՀՀ գրասենյակում")).To(Equal("ՀՀ գրասենյակում"))
		})
	})

	It("parses route codes", func() {
		r, ok := tracking.ParseRoute("Ocean USA to AM")
		Expect(ok).To(BeTrue())
		Expect(r).To(Equal(tracking.OceanInbound))

		_, ok = tracking.ParseRoute("ocean usa to am")
		Expect(ok).To(BeFalse())
	})
})
