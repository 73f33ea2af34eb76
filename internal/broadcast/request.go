package broadcast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"github.com/go-playground/validator/v10"
	"github.com/thoas/go-funk"
)

const (
	audiencePrefix     = "@"
	imageSeparator     = "|"
	languageSeparator  = "||"
	audienceAllKeyword = "all"
)

var (
	ErrEmptyMessage    = errors.New("broadcast message is empty")
	ErrInvalidAudience = errors.New("invalid broadcast audience")
	ErrInvalidImageURL = errors.New("invalid broadcast image url")
)

type AudienceKind int

const (
	AudienceAll AudienceKind = iota
	AudienceLanguage
	AudienceUsers
)

// Audience selects the recipients of a broadcast.
type Audience struct {
	Kind     AudienceKind
	Language i18n.Language
	UserIDs  []int64
}

func (a Audience) String() string {
	switch a.Kind {
	case AudienceLanguage:
		return audiencePrefix + a.Language.String()
	case AudienceUsers:
		ids := make([]string, 0, len(a.UserIDs))
		for _, id := range a.UserIDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		return audiencePrefix + strings.Join(ids, ",")
	default:
		return audiencePrefix + audienceAllKeyword
	}
}

// Request is a parsed broadcast command.
type Request struct {
	Audience Audience
	Message  i18n.Text
	ImageURL string `validate:"omitempty,url"`
}

var validate = validator.New()

// Parse reads the arguments of a broadcast command:
//
//	[@all|@hy|@en|@<id>[,<id>...]] <primary text>[||<secondary text>][|<image url>]
//
// Spaces around the separators are optional.
func Parse(args string) (Request, error) {
	req := Request{Audience: Audience{Kind: AudienceAll}}

	text := strings.TrimSpace(args)
	if strings.HasPrefix(text, audiencePrefix) {
		token, rest, _ := strings.Cut(text, " ")
		audience, err := parseAudience(strings.TrimPrefix(token, audiencePrefix))
		if err != nil {
			return Request{}, err
		}
		req.Audience = audience
		text = strings.TrimSpace(rest)
	}

	message, imageURL := cutImage(text)
	req.ImageURL = strings.TrimSpace(imageURL)

	primary, secondary, _ := strings.Cut(message, languageSeparator)
	primary = strings.TrimSpace(primary)
	secondary = strings.TrimSpace(secondary)
	if primary == "" {
		return Request{}, ErrEmptyMessage
	}
	if secondary == "" {
		secondary = primary
	}
	req.Message = i18n.Text{Primary: primary, Secondary: secondary}

	if err := validate.Struct(req); err != nil {
		return Request{}, fmt.Errorf("%w: %s", ErrInvalidImageURL, req.ImageURL)
	}

	return req, nil
}

// cutImage splits text on the last single "|", one that is not part of "||".
func cutImage(text string) (message, imageURL string) {
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] != imageSeparator[0] {
			continue
		}
		if (i > 0 && text[i-1] == '|') || (i+1 < len(text) && text[i+1] == '|') {
			continue
		}
		return text[:i], text[i+1:]
	}
	return text, ""
}

func parseAudience(token string) (Audience, error) {
	switch token {
	case audienceAllKeyword:
		return Audience{Kind: AudienceAll}, nil
	case string(i18n.Primary), string(i18n.Secondary):
		return Audience{Kind: AudienceLanguage, Language: i18n.Language(token)}, nil
	}

	ids := []int64{}
	for _, part := range strings.Split(token, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			return Audience{}, fmt.Errorf("%w: %q", ErrInvalidAudience, audiencePrefix+token)
		}
		ids = append(ids, id)
	}

	return Audience{Kind: AudienceUsers, UserIDs: funk.UniqInt64(ids)}, nil
}
