package utils

import "unicode/utf8"

// TruncateForPreview returns at most byteLimit bytes of text without splitting a
// multi-byte rune at the cut point.
func TruncateForPreview(text string, byteLimit int) string {
	if byteLimit <= 0 || len(text) <= byteLimit {
		return text
	}
	truncated := text[:byteLimit]
	for len(truncated) > 0 && !utf8.ValidString(truncated) {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated
}
