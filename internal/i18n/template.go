package i18n

import (
	"fmt"
	"regexp"
	"strconv"
)

// placeholder matches {name} and {name:spec}, where spec is a printf verb
// without the leading percent sign (".2f").
var placeholder = regexp.MustCompile(`\{(\w+)(?::([^{}]+))?\}`)

// Format substitutes params into a title template. A placeholder without a
// matching param is an error.
func Format(tmpl string, params map[string]float64) (string, error) {
	var missing string

	out := placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		parts := placeholder.FindStringSubmatch(m)
		name, spec := parts[1], parts[2]

		v, ok := params[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return m
		}
		if spec == "" {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
		return fmt.Sprintf("%"+spec, v)
	})

	if missing != "" {
		return "", fmt.Errorf("template %q: missing value for %q", tmpl, missing)
	}
	return out, nil
}
