package filesize

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidFormat is returned by Parse when the input string matches
// neither unit system's pattern.
var ErrInvalidFormat = errors.New("invalid filesize format")

// match is the result of testing a string against the unit system
// patterns. A nil system means the string matched neither.
type match struct {
	prefix string
	size   float64
	system *UnitSystem
}

// parseUnit tests s against the binary pattern first, then SI, so that
// ambiguous strings such as a bare "B" resolve to binary. The numeric
// literal may carry comma grouping separators, which are stripped; the
// period is the decimal point. A missing or malformed literal yields 0.
func parseUnit(s string) match {
	for _, system := range []*UnitSystem{Binary, SI} {
		m := system.pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		return match{prefix: m[2], size: parseLiteral(m[1]), system: system}
	}
	return match{}
}

func parseLiteral(literal string) float64 {
	literal = strings.ReplaceAll(literal, ",", "")
	size, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0
	}
	return size
}

// Parse converts a human-readable size string such as "10 MiB" or
// "4.5kB" into a Filesize tagged with the unit system the string was
// written in. Unknown prefixes are treated as plain bytes; the byte
// count is truncated toward zero.
func Parse(s string) (Filesize, error) {
	m := parseUnit(s)
	if m.system == nil {
		return Filesize{}, errors.Wrapf(ErrInvalidFormat, "cannot parse %q", s)
	}
	index := m.system.prefixIndex(m.prefix)
	bytes := int64(m.size * math.Pow(m.system.multiplier, float64(index)))
	return Filesize{bytes: bytes, system: m.system}, nil
}

// MustParse is Parse that panics on malformed input. It is intended
// for package-level values and tests.
func MustParse(s string) Filesize {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}
