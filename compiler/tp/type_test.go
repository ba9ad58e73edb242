package tp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for token, want := range map[string]Type{
		"none": None{},
		"!":    Never{},
		"usz":  Int{},
		"isz":  Int{Signed: true},
		"u8":   Int{Bits: 8},
		"u16":  Int{Bits: 16},
		"u32":  Int{Bits: 32},
		"u64":  Int{Bits: 64},
		"i8":   Int{Bits: 8, Signed: true},
		"i16":  Int{Bits: 16, Signed: true},
		"i32":  Int{Bits: 32, Signed: true},
		"i64":  Int{Bits: 64, Signed: true},
		"f32":  Float{Bits: 32},
		"f64":  Float{Bits: 64},
	} {
		got, err := Parse(token)
		require.NoError(t, err, "%v", token)
		assert.Equal(t, want, got, "%v", token)

		// the textual form is the token itself
		assert.Equal(t, token, got.String())
	}
}

func TestParseInvalid(t *testing.T) {
	for _, token := range []string{"", "u128", "int", "f16", "I32"} {
		_, err := Parse(token)
		require.Error(t, err, "%q", token)
		require.ErrorAs(t, err, &InvalidTypeError{})
	}
}

func TestArrayString(t *testing.T) {
	assert.Equal(t, "u8[3]", Array{Elem: Int{Bits: 8}, Len: 3, Sized: true}.String())
	assert.Equal(t, "i32[]", Array{Elem: Int{Bits: 32, Signed: true}}.String())
	assert.Equal(t, "u8[2][4]", Array{
		Elem:  Array{Elem: Int{Bits: 8}, Len: 2, Sized: true},
		Len:   4,
		Sized: true,
	}.String())
}

func TestTypesAreComparable(t *testing.T) {
	assert.True(t, Type(Int{Bits: 32, Signed: true}) == Type(Int{Bits: 32, Signed: true}))
	assert.False(t, Type(Int{Bits: 32}) == Type(Int{Bits: 32, Signed: true}))
	assert.True(t, Type(Array{Elem: Int{Bits: 8}, Len: 3, Sized: true}) == Type(Array{Elem: Int{Bits: 8}, Len: 3, Sized: true}))
}
