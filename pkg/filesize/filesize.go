// Package filesize represents file sizes as an exact count of bytes
// with parsing from and formatting to human-readable strings in the SI
// (base 1000) and binary (base 1024) unit systems.
package filesize

// Filesize is an immutable count of bytes together with the unit
// system it reports in. The stored count is always plain bytes no
// matter which unit the value was constructed from; the unit system
// affects only parsing and formatting.
type Filesize struct {
	bytes  int64
	system *UnitSystem
}

// New returns a Filesize reporting in the binary unit system.
func New(bytes int64) Filesize {
	return Filesize{bytes: bytes, system: Binary}
}

// NewIn returns a Filesize reporting in the given unit system.
func NewIn(bytes int64, system *UnitSystem) Filesize {
	if system == nil {
		system = Binary
	}
	return Filesize{bytes: bytes, system: system}
}

// Bytes returns the raw byte count.
func (f Filesize) Bytes() int64 { return f.bytes }

// System returns the unit system the size reports in.
func (f Filesize) System() *UnitSystem { return f.sys() }

// sys keeps the zero value usable; an unset system means binary.
func (f Filesize) sys() *UnitSystem {
	if f.system == nil {
		return Binary
	}
	return f.system
}

// Add returns the sum of the two sizes. The result keeps the
// receiver's unit system.
func (f Filesize) Add(other Filesize) Filesize {
	return Filesize{bytes: f.bytes + other.bytes, system: f.sys()}
}

// AddBytes returns the size grown by n bytes.
func (f Filesize) AddBytes(n int64) Filesize {
	return Filesize{bytes: f.bytes + n, system: f.sys()}
}

// Sub returns the difference of the two sizes. The result may be
// negative.
func (f Filesize) Sub(other Filesize) Filesize {
	return Filesize{bytes: f.bytes - other.bytes, system: f.sys()}
}

// SubBytes returns the size shrunk by n bytes.
func (f Filesize) SubBytes(n int64) Filesize {
	return Filesize{bytes: f.bytes - n, system: f.sys()}
}

// Mul returns the size scaled by n.
func (f Filesize) Mul(n int64) Filesize {
	return Filesize{bytes: f.bytes * n, system: f.sys()}
}

// Div returns the size divided by n, truncated toward zero.
func (f Filesize) Div(n float64) Filesize {
	return Filesize{bytes: int64(float64(f.bytes) / n), system: f.sys()}
}

// Ratio returns the dimensionless quotient of the two byte counts.
func (f Filesize) Ratio(other Filesize) float64 {
	return float64(f.bytes) / float64(other.bytes)
}

// Cmp compares byte counts only, returning -1, 0 or 1. The unit system
// does not participate in ordering: equal counts in different systems
// compare equal.
func (f Filesize) Cmp(other Filesize) int {
	switch {
	case f.bytes < other.bytes:
		return -1
	case f.bytes > other.bytes:
		return 1
	}
	return 0
}

// Equal reports whether the two sizes hold the same byte count,
// regardless of unit system.
func (f Filesize) Equal(other Filesize) bool {
	return f.bytes == other.bytes
}
