// Package i18n holds the message catalogs of the API and resolves message
// keys into the locale negotiated from the Accept-Language header.
//
// Catalogs are JSON objects mapping keys to patterns, one file per locale,
// embedded in the binary and loaded once. Patterns use positional
// placeholders: "Book with id {0} not found".
//
// Lookup walks the fallback chain language+region, language, default
// locale. A key missing from every catalog in the chain is returned as is.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

//go:generate mockgen -source=i18n.go -destination=../mock/translator_mock.go -package=mock

//go:embed locales/*.json
var embedded embed.FS

// ErrMissingDefaultCatalog is returned when no catalog exists for the
// default locale.
var ErrMissingDefaultCatalog = errors.New("missing catalog for default locale")

// Translator resolves message keys for a locale.
type Translator interface {
	// Negotiate picks the best supported locale for an Accept-Language
	// header value, falling back to the default locale.
	Negotiate(acceptLanguage string) string

	// Translate returns the message for key in locale with params
	// substituted for {0}, {1}, ...
	Translate(locale, key string, params ...any) string
}

// Catalog is an immutable set of per-locale message tables. It is safe for
// concurrent use.
type Catalog struct {
	messages      map[string]map[string]string
	defaultLocale string
	supported     []string
	matcher       language.Matcher
}

// NewCatalog loads the embedded catalogs for the supported locales.
func NewCatalog(defaultLocale string, supported []string) (*Catalog, error) {
	return LoadCatalog(embedded, "locales", defaultLocale, supported)
}

// LoadCatalog loads "<dir>/<locale>.json" from fsys for every supported
// locale. Supported locales without a file are allowed (for example a
// regional variant served from its base language), but the default locale
// must have one.
func LoadCatalog(fsys fs.FS, dir, defaultLocale string, supported []string) (*Catalog, error) {
	// The default locale is listed first so the matcher falls back to it.
	locales := []string{defaultLocale}
	for _, l := range supported {
		if l != defaultLocale {
			locales = append(locales, l)
		}
	}

	c := &Catalog{
		messages:      make(map[string]map[string]string, len(locales)),
		defaultLocale: defaultLocale,
		supported:     locales,
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		tags = append(tags, tag)

		table, err := readTable(fsys, path.Join(dir, locale+".json"))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		c.messages[locale] = table
	}

	if _, ok := c.messages[defaultLocale]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingDefaultCatalog, defaultLocale)
	}

	c.matcher = language.NewMatcher(tags)
	return c, nil
}

func readTable(fsys fs.FS, name string) (map[string]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("error decoding catalog %s: %w", name, err)
	}

	return table, nil
}

// DefaultLocale returns the locale used when negotiation fails.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Supported returns the supported locales, default first.
func (c *Catalog) Supported() []string {
	return append([]string(nil), c.supported...)
}

// Negotiate implements [Translator].
func (c *Catalog) Negotiate(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return c.defaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.defaultLocale
	}

	_, idx, confidence := c.matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(c.supported) {
		return c.defaultLocale
	}

	return c.supported[idx]
}

// Translate implements [Translator].
func (c *Catalog) Translate(locale, key string, params ...any) string {
	for _, candidate := range FallbackChain(locale, c.defaultLocale) {
		if pattern, ok := c.messages[candidate][key]; ok {
			return Format(pattern, params...)
		}
	}

	return key
}

// FallbackChain lists the locales consulted for locale, most specific
// first: language+region, language, then defaultLocale. Duplicates and
// unparsable locales are dropped.
func FallbackChain(locale, defaultLocale string) []string {
	chain := make([]string, 0, 3)
	add := func(l string) {
		for _, existing := range chain {
			if existing == l {
				return
			}
		}
		chain = append(chain, l)
	}

	if tag, err := language.Parse(locale); err == nil && tag != language.Und {
		add(tag.String())
		if base, conf := tag.Base(); conf != language.No {
			add(base.String())
		}
	}
	add(defaultLocale)

	return chain
}

// Format substitutes params for the positional placeholders {0}, {1}, ...
// in pattern. Placeholders without a matching parameter are left as is.
func Format(pattern string, params ...any) string {
	if len(params) == 0 {
		return pattern
	}

	pairs := make([]string, 0, 2*len(params))
	for i, p := range params {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(p))
	}

	return strings.NewReplacer(pairs...).Replace(pattern)
}
