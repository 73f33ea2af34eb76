package i18n

import "strings"

// Language selects which side of a bilingual text is rendered.
type Language string

const (
	// Primary is Armenian, the language every conversation starts in.
	Primary Language = "hy"
	// Secondary is English.
	Secondary Language = "en"
)

// ParseLanguage maps a stored or user supplied code to a Language.
// Anything that is not recognised as English falls back to Primary.
func ParseLanguage(code string) Language {
	if strings.EqualFold(strings.TrimSpace(code), string(Secondary)) {
		return Secondary
	}
	return Primary
}

func (l Language) String() string {
	if l == "" {
		return string(Primary)
	}
	return string(l)
}

// Text is a pair of translations of the same message.
type Text struct {
	Primary   string `json:"hy"`
	Secondary string `json:"en"`
}

// In returns the translation for lang. Unknown languages get the primary text.
func (t Text) In(lang Language) string {
	if lang == Secondary {
		return t.Secondary
	}
	return t.Primary
}

// Same builds a Text that reads identically in both languages.
func Same(s string) Text {
	return Text{Primary: s, Secondary: s}
}
