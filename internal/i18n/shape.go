package i18n

// Arabic letters change shape depending on whether they join the letter
// before and after them. Shape maps each letter to its contextual form in
// the Arabic Presentation Forms-B block so that renderers without an
// OpenType shaping engine draw joined text.

// forms holds the isolated, final, initial and medial presentation forms of
// a letter. Letters that only join to the right have no initial or medial
// form.
type forms [4]rune

const (
	isolated = iota
	final
	initial
	medial
)

var letterForms = map[rune]forms{
	'ء': {'ﺀ', 0, 0, 0}, // hamza
	'آ': {'ﺁ', 'ﺂ', 0, 0},
	'أ': {'ﺃ', 'ﺄ', 0, 0},
	'ؤ': {'ﺅ', 'ﺆ', 0, 0},
	'إ': {'ﺇ', 'ﺈ', 0, 0},
	'ئ': {'ﺉ', 'ﺊ', 'ﺋ', 'ﺌ'},
	'ا': {'ﺍ', 'ﺎ', 0, 0},
	'ب': {'ﺏ', 'ﺐ', 'ﺑ', 'ﺒ'},
	'ة': {'ﺓ', 'ﺔ', 0, 0},
	'ت': {'ﺕ', 'ﺖ', 'ﺗ', 'ﺘ'},
	'ث': {'ﺙ', 'ﺚ', 'ﺛ', 'ﺜ'},
	'ج': {'ﺝ', 'ﺞ', 'ﺟ', 'ﺠ'},
	'ح': {'ﺡ', 'ﺢ', 'ﺣ', 'ﺤ'},
	'خ': {'ﺥ', 'ﺦ', 'ﺧ', 'ﺨ'},
	'د': {'ﺩ', 'ﺪ', 0, 0},
	'ذ': {'ﺫ', 'ﺬ', 0, 0},
	'ر': {'ﺭ', 'ﺮ', 0, 0},
	'ز': {'ﺯ', 'ﺰ', 0, 0},
	'س': {'ﺱ', 'ﺲ', 'ﺳ', 'ﺴ'},
	'ش': {'ﺵ', 'ﺶ', 'ﺷ', 'ﺸ'},
	'ص': {'ﺹ', 'ﺺ', 'ﺻ', 'ﺼ'},
	'ض': {'ﺽ', 'ﺾ', 'ﺿ', 'ﻀ'},
	'ط': {'ﻁ', 'ﻂ', 'ﻃ', 'ﻄ'},
	'ظ': {'ﻅ', 'ﻆ', 'ﻇ', 'ﻈ'},
	'ع': {'ﻉ', 'ﻊ', 'ﻋ', 'ﻌ'},
	'غ': {'ﻍ', 'ﻎ', 'ﻏ', 'ﻐ'},
	'ـ': {'ـ', 'ـ', 'ـ', 'ـ'}, // tatweel
	'ف': {'ﻑ', 'ﻒ', 'ﻓ', 'ﻔ'},
	'ق': {'ﻕ', 'ﻖ', 'ﻗ', 'ﻘ'},
	'ك': {'ﻙ', 'ﻚ', 'ﻛ', 'ﻜ'},
	'ل': {'ﻝ', 'ﻞ', 'ﻟ', 'ﻠ'},
	'م': {'ﻡ', 'ﻢ', 'ﻣ', 'ﻤ'},
	'ن': {'ﻥ', 'ﻦ', 'ﻧ', 'ﻨ'},
	'ه': {'ﻩ', 'ﻪ', 'ﻫ', 'ﻬ'},
	'و': {'ﻭ', 'ﻮ', 0, 0},
	'ى': {'ﻯ', 'ﻰ', 0, 0},
	'ي': {'ﻱ', 'ﻲ', 'ﻳ', 'ﻴ'},
}

const lam = 'ل'

// lamAlef maps the alef that follows a lam to the isolated and final forms
// of the combined ligature.
var lamAlef = map[rune][2]rune{
	'آ': {'ﻵ', 'ﻶ'},
	'أ': {'ﻷ', 'ﻸ'},
	'إ': {'ﻹ', 'ﻺ'},
	'ا': {'ﻻ', 'ﻼ'},
}

// transparent reports whether r is a combining mark that does not break
// joining (harakat, superscript alef).
func transparent(r rune) bool {
	return (r >= 'ً' && r <= 'ٟ') || r == 'ٰ'
}

// joinsNext reports whether r connects to the letter after it.
func joinsNext(r rune) bool {
	f, ok := letterForms[r]
	return ok && f[initial] != 0
}

// joinsPrev reports whether r connects to the letter before it.
func joinsPrev(r rune) bool {
	f, ok := letterForms[r]
	return ok && f[final] != 0
}

// Shape returns s with every Arabic letter replaced by its contextual
// presentation form and lam-alef pairs fused. Other characters are left
// untouched. The result is still in logical order.
func Shape(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in))

	// neighbour returns the index of the next non-transparent rune from i
	// in direction step, or -1.
	neighbour := func(i, step int) int {
		for j := i + step; j >= 0 && j < len(in); j += step {
			if !transparent(in[j]) {
				return j
			}
		}
		return -1
	}

	for i := 0; i < len(in); i++ {
		r := in[i]
		f, ok := letterForms[r]
		if !ok {
			out = append(out, r)
			continue
		}

		prev := neighbour(i, -1)
		fromPrev := prev >= 0 && joinsNext(in[prev]) && joinsPrev(r)

		next := neighbour(i, 1)
		if r == lam && next >= 0 {
			if lig, ok := lamAlef[in[next]]; ok {
				if fromPrev {
					out = append(out, lig[1])
				} else {
					out = append(out, lig[0])
				}
				// keep marks that sat between lam and alef
				out = append(out, in[i+1:next]...)
				i = next
				continue
			}
		}
		toNext := next >= 0 && joinsNext(r) && joinsPrev(in[next])

		switch {
		case fromPrev && toNext:
			out = append(out, f[medial])
		case fromPrev:
			out = append(out, f[final])
		case toNext:
			out = append(out, f[initial])
		default:
			out = append(out, f[isolated])
		}
	}

	return string(out)
}
