package i18n

import (
	"golang.org/x/text/unicode/bidi"
)

// Visual reorders a single line of logical-order text into the left-to-right
// visual order a plain glyph renderer expects. It implements the parts of the
// Unicode Bidirectional Algorithm that matter for labels: paragraph level
// detection, weak and neutral type resolution, implicit levels, line
// reversal and bracket mirroring. Explicit embeddings and isolates are not
// supported and are treated as neutrals.
func Visual(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	orig := make([]bidi.Class, len(runes))
	for i, r := range runes {
		p, _ := bidi.LookupRune(r)
		orig[i] = p.Class()
	}

	base := paragraphLevel(orig)
	if base == 0 && !hasRTL(orig) {
		return s
	}

	classes := make([]bidi.Class, len(orig))
	copy(classes, orig)
	resolveWeak(classes, base)
	resolveNeutral(classes, base)

	levels := make([]int, len(classes))
	for i, c := range classes {
		levels[i] = implicitLevel(base, c)
	}
	// trailing whitespace takes the paragraph level
	for i := len(orig) - 1; i >= 0 && isWhitespace(orig[i]); i-- {
		levels[i] = base
	}

	for i, lvl := range levels {
		if lvl%2 == 1 {
			if m, ok := mirrored[runes[i]]; ok {
				runes[i] = m
			}
		}
	}

	reorder(runes, levels)
	return string(runes)
}

var mirrored = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'«': '»', '»': '«',
}

func strongDirection(c bidi.Class) (rtl, ok bool) {
	switch c {
	case bidi.L:
		return false, true
	case bidi.R, bidi.AL:
		return true, true
	}
	return false, false
}

func hasRTL(classes []bidi.Class) bool {
	for _, c := range classes {
		if c == bidi.R || c == bidi.AL {
			return true
		}
	}
	return false
}

// paragraphLevel is 1 when the first strong character is right to left.
func paragraphLevel(classes []bidi.Class) int {
	for _, c := range classes {
		if rtl, ok := strongDirection(c); ok {
			if rtl {
				return 1
			}
			return 0
		}
	}
	return 0
}

func embeddingClass(level int) bidi.Class {
	if level%2 == 1 {
		return bidi.R
	}
	return bidi.L
}

func isWhitespace(c bidi.Class) bool {
	return c == bidi.WS || c == bidi.S || c == bidi.B || c == bidi.BN
}

// resolveWeak applies rules W1 to W7.
func resolveWeak(c []bidi.Class, base int) {
	sos := embeddingClass(base)

	// W1: non-spacing marks take the type of the previous character.
	for i := range c {
		if c[i] == bidi.NSM {
			if i == 0 {
				c[i] = sos
			} else {
				c[i] = c[i-1]
			}
		}
	}

	// W2: European numbers after Arabic letters are Arabic numbers.
	// W3: Arabic letters are right to left.
	last := sos
	for i := range c {
		switch c[i] {
		case bidi.L, bidi.R, bidi.AL:
			last = c[i]
		case bidi.EN:
			if last == bidi.AL {
				c[i] = bidi.AN
			}
		}
	}
	for i := range c {
		if c[i] == bidi.AL {
			c[i] = bidi.R
		}
	}

	// W4: a single separator between two numbers of the same kind joins them.
	for i := 1; i+1 < len(c); i++ {
		switch {
		case c[i] == bidi.ES && c[i-1] == bidi.EN && c[i+1] == bidi.EN:
			c[i] = bidi.EN
		case c[i] == bidi.CS && c[i-1] == bidi.EN && c[i+1] == bidi.EN:
			c[i] = bidi.EN
		case c[i] == bidi.CS && c[i-1] == bidi.AN && c[i+1] == bidi.AN:
			c[i] = bidi.AN
		}
	}

	// W5: terminators next to European numbers become numbers.
	for i := 0; i < len(c); {
		if c[i] != bidi.ET {
			i++
			continue
		}
		j := i
		for j < len(c) && c[j] == bidi.ET {
			j++
		}
		if (i > 0 && c[i-1] == bidi.EN) || (j < len(c) && c[j] == bidi.EN) {
			for k := i; k < j; k++ {
				c[k] = bidi.EN
			}
		}
		i = j
	}

	// W6: leftover separators and terminators are neutral.
	for i := range c {
		switch c[i] {
		case bidi.ES, bidi.ET, bidi.CS:
			c[i] = bidi.ON
		}
	}

	// W7: European numbers in a left-to-right context are left to right.
	last = sos
	for i := range c {
		switch c[i] {
		case bidi.L, bidi.R:
			last = c[i]
		case bidi.EN:
			if last == bidi.L {
				c[i] = bidi.L
			}
		}
	}
}

// neutralSide maps a resolved class to the direction it lends neighbouring
// neutrals. Numbers count as right to left.
func neutralSide(c bidi.Class) (bidi.Class, bool) {
	switch c {
	case bidi.L:
		return bidi.L, true
	case bidi.R, bidi.EN, bidi.AN:
		return bidi.R, true
	}
	return 0, false
}

// resolveNeutral applies rules N1 and N2.
func resolveNeutral(c []bidi.Class, base int) {
	sos := embeddingClass(base)

	for i := 0; i < len(c); {
		if _, ok := neutralSide(c[i]); ok {
			i++
			continue
		}
		j := i
		for j < len(c) {
			if _, ok := neutralSide(c[j]); ok {
				break
			}
			j++
		}

		before := sos
		if i > 0 {
			before, _ = neutralSide(c[i-1])
		}
		after := sos
		if j < len(c) {
			after, _ = neutralSide(c[j])
		}

		dir := sos
		if before == after {
			dir = before
		}
		for k := i; k < j; k++ {
			c[k] = dir
		}
		i = j
	}
}

// implicitLevel applies rules I1 and I2.
func implicitLevel(base int, c bidi.Class) int {
	if base%2 == 0 {
		switch c {
		case bidi.R:
			return base + 1
		case bidi.AN, bidi.EN:
			return base + 2
		}
		return base
	}
	switch c {
	case bidi.L, bidi.EN, bidi.AN:
		return base + 1
	}
	return base
}

// reorder applies rule L2: from the highest level down to the lowest odd
// level, reverse every run at that level or above.
func reorder(runes []rune, levels []int) {
	highest, lowestOdd := 0, -1
	for _, l := range levels {
		if l > highest {
			highest = l
		}
		if l%2 == 1 && (lowestOdd < 0 || l < lowestOdd) {
			lowestOdd = l
		}
	}
	if lowestOdd < 0 {
		return
	}

	for lvl := highest; lvl >= lowestOdd; lvl-- {
		for i := 0; i < len(levels); {
			if levels[i] < lvl {
				i++
				continue
			}
			j := i
			for j < len(levels) && levels[j] >= lvl {
				j++
			}
			reverseRange(runes, levels, i, j)
			i = j
		}
	}
}

func reverseRange(runes []rune, levels []int, from, to int) {
	for a, b := from, to-1; a < b; a, b = a+1, b-1 {
		runes[a], runes[b] = runes[b], runes[a]
		levels[a], levels[b] = levels[b], levels[a]
	}
}
