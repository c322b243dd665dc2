package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
	}{
		{"Int", 42, 42},
		{"Int32", int32(-7), -7},
		{"Uint8", uint8(9), 9},
		{"Float", 3.9, 3},
		{"String", " 1024 ", 1024},
		{"Bytes", []byte("12"), 12},
		{"Garbage", "abc", 0},
		{"Nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt64(tt.in))
		})
	}
}

func TestToFloat64(t *testing.T) {
	assert.Equal(t, 1.5, ToFloat64(1.5))
	assert.Equal(t, float64(2), ToFloat64(2))
	assert.Equal(t, 0.25, ToFloat64("0.25"))
	assert.Equal(t, float64(0), ToFloat64("x"))
}

func TestToString(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "12", ToString(12))
	assert.Equal(t, "2024-03-01T12:00:00Z", ToString(ts))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool("yes"))
	assert.True(t, ToBool([]byte("1")))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(1.0))
}

func TestToStrings(t *testing.T) {
	assert.Nil(t, ToStrings(nil))
	assert.Equal(t, []string{"a", "1"}, ToStrings([]any{"a", 1}))
	assert.Equal(t, []string{"solo"}, ToStrings("solo"))

	src := []string{"x"}
	out := ToStrings(src)
	src[0] = "mutated"
	assert.Equal(t, []string{"x"}, out)
}
