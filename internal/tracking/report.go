package tracking

import (
	"strings"
)

// Link is a social network affordance shown under a report.
type Link struct {
	Label string
	URL   string
}

// SocialLinks are attached to every successful report.
var SocialLinks = []Link{
	{Label: "📘 Facebook", URL: "https://www.facebook.com/AGGArmenia"},
	{Label: "📸 Instagram", URL: "https://www.instagram.com/americanglobalgroup_"},
	{Label: "🌐 Website", URL: "https://AmericanGlobalGroup.com"},
}

// ContactInfo is the static contact block appended to reports and not-found replies.
const ContactInfo = "📞 Armenia: +374 43 33 44 44\n📞 USA: +1 424 333-4444\n"

// reportBuilder composes the report lines in a fixed order.
type reportBuilder struct {
	lines   []string
	trailer string
}

func (b *reportBuilder) line(s string) {
	b.lines = append(b.lines, s)
}

// field adds "label: value", or "label:" when value is empty.
func (b *reportBuilder) field(label, value string) {
	if value == "" {
		b.line(label + ":")
		return
	}
	b.line(label + ": " + value)
}

func (b *reportBuilder) note(s string) {
	b.trailer = s
}

func (b *reportBuilder) String() string {
	var sb strings.Builder
	for _, l := range b.lines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	if b.trailer != "" {
		sb.WriteString("\n")
		sb.WriteString(b.trailer)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(ContactInfo)
	return sb.String()
}
