// Package locale translates the storefront's UI labels.
//
// Message catalogs are embedded TOML files, one per language. Unknown
// languages and missing messages fall back to English.
package locale

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
)

//go:embed messages/*.toml
var messageFiles embed.FS

// Message identifiers.
const (
	SplashTitle    = "splash_title"
	Filter         = "filter"
	GridView       = "grid_view"
	ListView       = "list_view"
	Empty          = "empty"
	Product        = "product"
	Retry          = "retry"
	Back           = "back"
	Open           = "open"
	Toggle         = "toggle"
	ErrorTransport = "error_transport"
	ErrorMalformed = "error_malformed"
	ErrorNotFound  = "error_not_found"
	ErrorUnknown   = "error_unknown"
)

// Localizer resolves message identifiers for one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewBundle loads every embedded catalog.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFiles.ReadDir("messages")
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}
	for _, entry := range entries {
		name := path.Join("messages", entry.Name())
		data, err := messageFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("locale: read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("locale: parse %s: %w", name, err)
		}
	}
	return bundle, nil
}

// New creates a Localizer for a BCP 47 tag such as "de" or "en-US".
func New(tag string) (*Localizer, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("locale: %q: %w", tag, err)
	}

	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	_, index, _ := matcher.Match(parsed)

	return &Localizer{
		tag:       bundle.LanguageTags()[index],
		localizer: i18n.NewLocalizer(bundle, parsed.String(), language.English.String()),
	}, nil
}

// Tag is the catalog language actually in use.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T returns the message for id, or id itself when no catalog has it.
func (l *Localizer) T(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// FetchError returns the user facing text for a failed catalog request.
func (l *Localizer) FetchError(err error) string {
	switch catalog.KindName(err) {
	case "transport":
		return l.T(ErrorTransport)
	case "malformed":
		return l.T(ErrorMalformed)
	case "not_found":
		return l.T(ErrorNotFound)
	default:
		return l.T(ErrorUnknown)
	}
}
