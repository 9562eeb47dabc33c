// Package slug derives URL-safe identifiers from display names.
package slug

import "strings"

// Make lowercases the input, keeps letters and digits, and collapses every
// other run of characters into a single hyphen. "Quantum Suite" → "quantum-suite".
func Make(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
