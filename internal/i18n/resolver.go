// Package i18n selects translation bundles and prepares their strings for
// display, including Arabic shaping and visual reordering.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Resolver hands out Localizers for language codes.
type Resolver struct {
	shapeRTL bool
}

// NewResolver returns a Resolver. When shapeRTL is false, right-to-left
// strings are returned unshaped in logical order.
func NewResolver(shapeRTL bool) *Resolver {
	return &Resolver{shapeRTL: shapeRTL}
}

// Resolve returns the Localizer for lang. Empty, malformed or unsupported
// codes fall back to English; region subtags are ignored ("ar-MA" is "ar").
func (r *Resolver) Resolve(lang string) Localizer {
	return Localizer{
		bundle: lookup(lang),
		shape:  r.shapeRTL,
	}
}

func lookup(lang string) *Bundle {
	if b, ok := bundles[lang]; ok {
		return b
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return bundles[defaultLang]
	}
	base, conf := tag.Base()
	if conf == language.No {
		return bundles[defaultLang]
	}
	if b, ok := bundles[base.String()]; ok {
		return b
	}
	return bundles[defaultLang]
}

// Localizer renders a Bundle's strings ready to hand to the chart renderer.
type Localizer struct {
	bundle *Bundle
	shape  bool
}

// Code is the language code of the selected bundle.
func (l Localizer) Code() string { return l.bundle.Code }

// RTL reports whether the bundle is written right to left.
func (l Localizer) RTL() bool {
	return l.bundle.Direction == RTL
}

func (l Localizer) YLabel() string       { return l.Text(l.bundle.YLabel) }
func (l Localizer) InvestXLabel() string { return l.Text(l.bundle.InvestXLabel) }
func (l Localizer) InvestYLabel() string { return l.Text(l.bundle.InvestYLabel) }

// Text prepares s for display: RTL strings are shaped and reordered into
// visual order, everything else passes through.
func (l Localizer) Text(s string) string {
	if !l.RTL() || !l.shape {
		return s
	}
	return Visual(Shape(s))
}

// Title returns the display title for kind with params substituted.
func (l Localizer) Title(kind string, params map[string]float64) (string, error) {
	tmpl, ok := l.bundle.Titles[kind]
	if !ok {
		return "", fmt.Errorf("no %s title for %q", l.bundle.Code, kind)
	}
	title, err := Format(tmpl, params)
	if err != nil {
		return "", fmt.Errorf("%s title for %q: %w", l.bundle.Code, kind, err)
	}
	return l.Text(title), nil
}

// Labels returns the display category labels for kind.
func (l Localizer) Labels(kind string) ([]string, error) {
	src, ok := l.bundle.Labels[kind]
	if !ok {
		return nil, fmt.Errorf("no %s labels for %q", l.bundle.Code, kind)
	}
	out := make([]string, len(src))
	for i, s := range src {
		out[i] = l.Text(s)
	}
	return out, nil
}
