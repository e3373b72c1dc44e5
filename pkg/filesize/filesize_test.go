package filesize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsToBinary(t *testing.T) {
	assert.Same(t, Binary, New(42).System())
	assert.Same(t, SI, NewIn(42, SI).System())
	assert.Same(t, Binary, NewIn(42, nil).System())

	var zero Filesize
	assert.Same(t, Binary, zero.System())
	assert.Equal(t, "0.00 B", zero.String())
}

func TestArithmetic(t *testing.T) {
	a := NewIn(1000, SI)
	b := New(500)

	sum := a.Add(b)
	assert.Equal(t, int64(1500), sum.Bytes())
	assert.Same(t, SI, sum.System(), "result keeps the receiver's system")
	assert.Same(t, Binary, b.Add(a).System())
	assert.Equal(t, a.Add(b).Bytes(), b.Add(a).Bytes(), "addition is commutative")

	c := New(250)
	assert.Equal(t, a.Add(b).Add(c).Bytes(), a.Add(b.Add(c)).Bytes(), "addition is associative")

	assert.Equal(t, int64(500), a.Sub(b).Bytes())
	assert.Equal(t, int64(-500), b.Sub(a).Bytes(), "subtraction may go negative")

	assert.Equal(t, int64(1300), a.AddBytes(300).Bytes())
	assert.Equal(t, int64(700), a.SubBytes(300).Bytes())
	assert.Equal(t, int64(3000), a.Mul(3).Bytes())
}

func TestDiv(t *testing.T) {
	assert.Equal(t, int64(512), New(1024).Div(2).Bytes())
	assert.Equal(t, int64(3), New(10).Div(3).Bytes(), "quotients truncate toward zero")
	assert.Same(t, SI, NewIn(1000, SI).Div(4).System())
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 2.0, New(2048).Ratio(New(1024)))
	assert.Equal(t, 0.5, New(1024).Ratio(NewIn(2048, SI)))
}

func TestOrdering(t *testing.T) {
	assert.Equal(t, -1, New(500).Cmp(New(1000)))
	assert.Equal(t, 1, New(1000).Cmp(New(500)))
	assert.Equal(t, 0, New(1000).Cmp(New(1000)))

	// Equal byte counts compare equal across unit systems.
	assert.True(t, NewIn(1000, SI).Equal(NewIn(1000, Binary)))
	assert.Equal(t, 0, NewIn(1000, SI).Cmp(NewIn(1000, Binary)))
	assert.False(t, New(1000).Equal(New(1001)))
}
