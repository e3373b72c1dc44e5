package filesize

import (
	"regexp"
	"strings"
)

// UnitSystem describes a byte-counting convention: the ordered prefix
// letters, the multiplier between adjacent prefixes, and the pattern
// that recognizes size strings written in that convention.
type UnitSystem struct {
	name       string
	prefixes   []string
	multiplier float64
	pattern    *regexp.Regexp
}

var (
	// SI is the decimal convention; sizes scale by 1000, e.g. "10 kB", "4MB".
	SI = &UnitSystem{
		name:       "SI",
		prefixes:   []string{"k", "M", "G", "T", "P", "E", "Z", "Y"},
		multiplier: 1000,
		pattern:    regexp.MustCompile(`(?i)^([\d,.]*)\s?([kmgtpezy]?)B$`),
	}

	// Binary is the IEC convention; sizes scale by 1024, e.g. "10 KiB", "4MiB".
	Binary = &UnitSystem{
		name:       "binary",
		prefixes:   []string{"Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"},
		multiplier: 1024,
		pattern:    regexp.MustCompile(`(?i)^([\d,.]*)\s?((?:[kmgtpezy]i)?)B$`),
	}
)

// Name returns the conventional name of the system, "SI" or "binary".
func (u *UnitSystem) Name() string { return u.name }

// Multiplier returns the scale between adjacent prefixes, 1000 or 1024.
func (u *UnitSystem) Multiplier() float64 { return u.multiplier }

// prefixIndex resolves a prefix within the system's list, comparing
// only the first character and ignoring case. Returns the list
// position plus one, or 0 for the empty prefix and for prefixes not in
// the list (both mean plain bytes).
func (u *UnitSystem) prefixIndex(prefix string) int {
	if prefix == "" {
		return 0
	}
	for i, p := range u.prefixes {
		if strings.EqualFold(p[:1], prefix[:1]) {
			return i + 1
		}
	}
	return 0
}
