package filesize

import (
	"fmt"
	"math"
)

// In converts the stored byte count into the unit named by unit, e.g.
// "MiB", "kB" or "B". The empty string and plain "B" return the raw
// byte count. The prefix is resolved against the receiver's own unit
// system even when the unit string is written in the other convention:
// In("MB") on a binary-tagged size divides by powers of 1024. Prefixes
// unknown to the receiver's system also return the raw byte count.
func (f Filesize) In(unit string) float64 {
	sys := f.sys()
	position := sys.prefixIndex(parseUnit(unit).prefix)
	return float64(f.bytes) / math.Pow(sys.multiplier, float64(position))
}

// String formats the size in the best-fit unit of its system with two
// decimal places, e.g. "1.46 KiB". Counts below one multiplier,
// including zero and negatives, format as plain bytes: "0.00 B".
func (f Filesize) String() string {
	sys := f.sys()
	unit := "B"
	if float64(f.bytes) >= sys.multiplier {
		position := int(math.Floor(math.Log(float64(f.bytes)) / math.Log(sys.multiplier)))
		if position > len(sys.prefixes)-1 {
			position = len(sys.prefixes) - 1
		}
		if position < 1 {
			position = 1
		}
		unit = sys.prefixes[position-1] + "B"
	}
	return fmt.Sprintf("%.2f %s", f.In(unit), unit)
}
