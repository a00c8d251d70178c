// Package digits normalizes locale-specific numerals to ASCII digits.
//
// Clock times entered from Arabic-locale devices arrive with Arabic-Indic
// numerals (U+0660..U+0669) mixed freely with ASCII digits. Everything that
// parses numbers downstream expects ASCII, so normalization happens here in
// one place.
package digits

// arabicIndic maps each Arabic-Indic digit codepoint to its ASCII equivalent.
var arabicIndic = map[rune]rune{
	'٠': '0',
	'١': '1',
	'٢': '2',
	'٣': '3',
	'٤': '4',
	'٥': '5',
	'٦': '6',
	'٧': '7',
	'٨': '8',
	'٩': '9',
}

// Normalize returns s with every Arabic-Indic digit replaced by its ASCII
// counterpart. All other runes pass through unchanged.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if d, ok := arabicIndic[r]; ok {
			out = append(out, d)
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
