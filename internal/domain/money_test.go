package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		expectError bool
	}{
		{name: "integer", input: "22", want: "22"},
		{name: "trailing zero fraction", input: "2.0", want: "2"},
		{name: "four digits", input: "2.0001", want: "2.0001"},
		{name: "trailing zero trimmed", input: "2.010", want: "2.01"},
		{name: "negative", input: "-9", want: "-9"},
		{name: "surrounding whitespace", input: "  3.1 ", want: "3.1"},
		{name: "five fractional digits", input: "1.00001", expectError: true},
		{name: "five fractional zeros", input: "1.00000", expectError: true},
		{name: "exponent notation", input: "1e3", expectError: true},
		{name: "upper case exponent", input: "2.5E-2", expectError: true},
		{name: "not a number", input: "abc", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMoney(tt.input)
			if tt.expectError {
				require.ErrorIs(t, err, ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoney_ZeroValue(t *testing.T) {
	var m Money
	assert.Equal(t, "0", m.String())
	assert.True(t, m.Equal(ZeroMoney))
}

func TestMoney_ExactArithmetic(t *testing.T) {
	sum := ZeroMoney
	for _, s := range []string{"2", "2.0", "2.0001", "2.0001", "2.9999", "2.010"} {
		sum = sum.Add(MustParseMoney(s))
	}
	sum = sum.Sub(MustParseMoney("3.1"))

	assert.Equal(t, "9.9101", sum.String())
	assert.True(t, sum.Equal(MustParseMoney("9.9101")))
}

func TestMoney_NoDriftAfterRepeatedAddSub(t *testing.T) {
	step := MustParseMoney("0.0001")
	m := MustParseMoney("0.1")
	for i := 0; i < 10000; i++ {
		m = m.Add(step)
	}
	for i := 0; i < 10000; i++ {
		m = m.Sub(step)
	}
	assert.Equal(t, "0.1", m.String())
}

func TestMoney_Comparisons(t *testing.T) {
	a := MustParseMoney("10")
	b := MustParseMoney("10.0000")
	c := MustParseMoney("10.0001")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, 1, c.Cmp(a))
	assert.Equal(t, -1, a.Cmp(c))
	assert.Equal(t, "-0.0001", a.Sub(c).String())
}
