package tracking_test

import (
	"strings"

	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"github.com/americanglobalgroup/parcel-tracker/internal/tracking"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// newRow returns a row of size cells with the given positions filled in.
func newRow(size int, cells map[int]string) tracking.Row {
	row := make(tracking.Row, size)
	for i, v := range cells {
		row[i] = v
	}
	return row
}

var _ = Describe("extractor", func() {
	var extractor *tracking.Extractor

	BeforeEach(func() {
		extractor = tracking.NewExtractor(tracking.DefaultRules(nil), i18n.DefaultCatalog())
	})

	Context("air outbound", func() {
		It("reports a parcel received by the customer with its note", func() {
			row := newRow(29, map[int]string{
				2:  "2024-04-20",
				21: "3",
				24: "2024-05-02",
				25: "ԱՄՆ գրասենյակում",
				26: "yes",
				27: "Picked up 5/1",
			})

			out := extractor.Extract(tracking.AirOutbound, row, i18n.Secondary)
			Expect(out.OK()).To(BeTrue())
			Expect(out.Report.ShowSocialLinks).To(BeTrue())
			Expect(out.Text()).To(ContainSubstring("Order Date: 2024-04-20\n"))
			Expect(out.Text()).To(ContainSubstring("Home delivery is ordered\n"))
			Expect(out.Text()).To(ContainSubstring("Received by the Customer: Picked up 5/1\n"))
			Expect(out.Text()).NotTo(ContainSubstring("Estimated Delivery Date"))
			Expect(out.Text()).NotTo(ContainSubstring("Parcel Status"))
		})

		It("shows the translated status and the american office when not received", func() {
			row := newRow(29, map[int]string{
				2:  "2024-04-20",
				21: "0",
				24: "2024-05-02",
				25: "ԱՄՆ գրասենյակում",
				26: "no",
			})

			out := extractor.Extract(tracking.AirOutbound, row, i18n.Secondary)
			Expect(out.OK()).To(BeTrue())
			Expect(out.Text()).To(ContainSubstring("Home delivery is not ordered\n"))
			Expect(out.Text()).To(ContainSubstring("Parcel Status: In the American Office\n"))
			Expect(out.Text()).To(ContainSubstring("Estimated Delivery Date to the American Office: 2024-05-02\n"))
		})

		It("shows the raw status in the primary language", func() {
			row := newRow(29, map[int]string{25: "ԱՄՆ գրասենյակում"})

			out := extractor.Extract(tracking.AirOutbound, row, i18n.Primary)
			Expect(out.Text()).To(ContainSubstring("Առաքման կարգավիճակ: ԱՄՆ գրասենյակում\n"))
			Expect(out.Text()).To(ContainSubstring("Ժամանման նախատեսվող ամսաթիվ դեպի ԱՄՆ գրասենյակ:"))
		})

		It("does not accept YES as a home delivery order", func() {
			row := newRow(29, map[int]string{21: "YES"})

			out := extractor.Extract(tracking.AirOutbound, row, i18n.Secondary)
			Expect(out.Text()).To(ContainSubstring("Home delivery is not ordered"))
		})
	})

	Context("air inbound", func() {
		It("falls back to the raw status when it has no translation", func() {
			row := newRow(25, map[int]string{
				2:  "2024-04-20",
				17: "YES",
				20: "2024-05-10",
				21: "Customs Hold X",
			})

			out := extractor.Extract(tracking.AirInbound, row, i18n.Secondary)
			Expect(out.OK()).To(BeTrue())
			Expect(out.Text()).To(ContainSubstring("Home delivery is ordered\n"))
			Expect(out.Text()).To(ContainSubstring("Parcel Status: Customs Hold X\n"))
			Expect(out.Text()).To(ContainSubstring("Estimated Delivery Date to the Armenian Office: 2024-05-10\n"))
		})

		It("ignores the received note column of other routes", func() {
			row := newRow(29, map[int]string{23: "TRUE", 27: "should not show"})

			out := extractor.Extract(tracking.AirInbound, row, i18n.Secondary)
			Expect(out.Text()).To(ContainSubstring("Received by the Customer:\n"))
			Expect(out.Text()).NotTo(ContainSubstring("should not show"))
		})

		It("appends the operator note verbatim", func() {
			row := newRow(25, map[int]string{21: "ՀՀ գրասենյակում", 24: "Զանգահարեք մեզ"})

			out := extractor.Extract(tracking.AirInbound, row, i18n.Secondary)
			Expect(out.Text()).To(ContainSubstring("Parcel Status: In the Armenian Office\n"))
			Expect(out.Text()).To(ContainSubstring("\n\nԶանգահարեք մեզ\n"))
		})
	})

	Context("ocean inbound", func() {
		It("returns a report for a row truncated before the status column", func() {
			row := newRow(20, map[int]string{2: "2024-01-01", 16: "1"})

			out := extractor.Extract(tracking.OceanInbound, row, i18n.Secondary)
			Expect(out.OK()).To(BeTrue())
			Expect(out.Failure).To(BeNil())
			Expect(out.Text()).To(ContainSubstring("Parcel Status:\n"))
			Expect(out.Text()).To(ContainSubstring("Estimated Delivery Date to the Armenian Office:\n"))
		})

		It("reads the received flag at its own position", func() {
			row := newRow(33, map[int]string{30: "✓", 32: "Delivered to Gyumri branch"})

			out := extractor.Extract(tracking.OceanInbound, row, i18n.Primary)
			Expect(out.Text()).To(ContainSubstring("Ստացված է հաճախորդի կողմից:\n"))
			Expect(out.Text()).To(ContainSubstring("Delivered to Gyumri branch"))
		})
	})

	It("never fails on rows shorter than any declared column", func() {
		for _, route := range tracking.Routes() {
			for size := 0; size < 34; size++ {
				row := newRow(size, nil)
				for _, lang := range []i18n.Language{i18n.Primary, i18n.Secondary} {
					out := extractor.Extract(route, row, lang)
					Expect(out.OK()).To(BeTrue(), "route %s size %d", route, size)
				}
			}
		}
	})

	It("ends every report with the contact block", func() {
		out := extractor.Extract(tracking.AirInbound, nil, i18n.Primary)
		Expect(strings.HasSuffix(out.Text(), "\n"+tracking.ContactInfo)).To(BeTrue())
	})

	It("returns the unsupported route outcome for unknown routes", func() {
		out := extractor.Extract(tracking.Route("Rail AM to GE"), newRow(40, nil), i18n.Secondary)
		Expect(out.OK()).To(BeFalse())
		Expect(out.Report).To(BeNil())
		Expect(out.Failure.Reason).To(Equal(tracking.UnsupportedRoute))
		Expect(out.Text()).To(Equal("Unsupported route."))
	})

	It("uses extra status translations", func() {
		extra := i18n.StatusTranslations{"Air USA to AM": {"Ճանապարհին": "On the way"}}
		extractor = tracking.NewExtractor(tracking.DefaultRules(extra), i18n.DefaultCatalog())

		out := extractor.Extract(tracking.AirInbound, newRow(22, map[int]string{21: "Ճանապարհին"}), i18n.Secondary)
		Expect(out.Text()).To(ContainSubstring("Parcel Status: On the way\n"))
	})
})
