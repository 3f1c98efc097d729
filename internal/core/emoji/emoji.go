// Package emoji extracts emoji occurrences from message text using a fixed
// table of Unicode codepoint ranges (pictographs, emoticons, transport
// symbols, dingbats). Contiguous runs of in-range codepoints are returned as
// a single occurrence, so multi-codepoint sequences such as skin-tone
// modifiers or ZWJ sequences come back as one run rather than one logical
// emoji. This is an approximation, not a grapheme-cluster detector.
package emoji

// inclusionRange is a closed interval of codepoints treated as emoji.
type inclusionRange struct {
	lo, hi rune
}

var emojiRanges = []inclusionRange{
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map symbols
	{0x1F700, 0x1F77F}, // alchemical symbols
	{0x1F780, 0x1F7FF}, // geometric shapes extended
	{0x1F800, 0x1F8FF}, // supplemental arrows-C
	{0x1FA00, 0x1FA6F}, // chess symbols
	{0x1FA70, 0x1FAFF}, // symbols and pictographs extended-A
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
}

// InRange reports whether r falls in one of the emoji inclusion ranges.
func InRange(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng.lo && r <= rng.hi {
			return true
		}
	}
	return false
}

// Extract returns every contiguous run of in-range codepoints in text, in
// order of appearance. Returns nil when the text contains no emoji.
func Extract(text string) []string {
	var runs []string
	var current []rune

	for _, r := range text {
		if InRange(r) {
			current = append(current, r)
			continue
		}
		if len(current) > 0 {
			runs = append(runs, string(current))
			current = current[:0]
		}
	}
	if len(current) > 0 {
		runs = append(runs, string(current))
	}

	return runs
}
