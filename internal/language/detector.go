// Package language provides the per-character script classifier used by
// meeting mode to pick a translation direction.
package language

// Detect classifies text as "ko", "ja" or "en" by counting script
// membership per rune.
//
// Korean counts Hangul syllables and Hangul Jamo. Japanese counts
// Hiragana, Katakana and CJK unified ideographs. Korean wins ties when it
// appears at all; text with no Korean and no Japanese characters,
// including the empty string, classifies as "en".
func Detect(text string) string {
	korean := 0
	japanese := 0

	for _, r := range text {
		switch {
		case r >= 0xAC00 && r <= 0xD7A3: // Hangul syllables
			korean++
		case r >= 0x1100 && r <= 0x11FF: // Hangul Jamo
			korean++
		case r >= 0x3040 && r <= 0x309F: // Hiragana
			japanese++
		case r >= 0x30A0 && r <= 0x30FF: // Katakana
			japanese++
		case r >= 0x4E00 && r <= 0x9FFF: // CJK unified ideographs
			japanese++
		}
	}

	if korean > 0 && korean >= japanese {
		return "ko"
	}
	if japanese > korean {
		return "ja"
	}
	return "en"
}
