package tracking_test

import (
	"errors"
	"strconv"

	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"github.com/americanglobalgroup/parcel-tracker/internal/tracking"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("fault guard", func() {
	var e *tracking.Extractor

	BeforeEach(func() {
		e = tracking.NewExtractor(tracking.DefaultRules(nil), i18n.DefaultCatalog())
	})

	indexFault := func() tracking.Outcome {
		var cells []string
		_ = cells[3]
		return tracking.Outcome{}
	}

	It("classifies index faults with the generic message", func() {
		out := e.Guard(tracking.AirOutbound, nil, i18n.Secondary, indexFault)
		Expect(out.Failure).NotTo(BeNil())
		Expect(out.Failure.Reason).To(Equal(tracking.IndexFault))
		Expect(out.Text()).To(Equal("An error occurred:"))
	})

	It("classifies value faults with the generic message", func() {
		out := e.Guard(tracking.AirOutbound, nil, i18n.Primary, func() tracking.Outcome {
			_, err := strconv.Atoi("x")
			panic(err)
		})
		Expect(out.Failure.Reason).To(Equal(tracking.ValueFault))
		Expect(out.Text()).To(Equal("Ինչ-որ սխալ տեղի ունեցավ:"))
	})

	It("appends the detail of unexpected faults", func() {
		out := e.Guard(tracking.AirOutbound, nil, i18n.Secondary, func() tracking.Outcome {
			panic(errors.New("sheet went away"))
		})
		Expect(out.Failure.Reason).To(Equal(tracking.Unexpected))
		Expect(out.Text()).To(Equal("An error occurred: sheet went away"))
	})

	It("hides the detail when verbose errors are off", func() {
		e = tracking.NewExtractor(tracking.DefaultRules(nil), i18n.DefaultCatalog(), tracking.WithVerboseErrors(false))
		out := e.Guard(tracking.AirOutbound, nil, i18n.Secondary, func() tracking.Outcome {
			panic("boom")
		})
		Expect(out.Failure.Reason).To(Equal(tracking.Unexpected))
		Expect(out.Text()).To(Equal("An error occurred:"))
	})

	It("passes through outcomes without faults", func() {
		out := e.Guard(tracking.AirOutbound, nil, i18n.Secondary, func() tracking.Outcome {
			return tracking.Outcome{Report: &tracking.Report{Text: "ok"}}
		})
		Expect(out.Text()).To(Equal("ok"))
	})
})
