//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 42, ConvertToInt("42"))
	assert.Equal(t, 0, ConvertToInt("not-a-number"))
	assert.Equal(t, 0, ConvertToInt(""))
}

func TestConvertToInt64(t *testing.T) {
	assert.Equal(t, int64(1<<40), ConvertToInt64("1099511627776"))
	assert.Equal(t, int64(0), ConvertToInt64("4.2"))
}

func TestConvertToFloat64(t *testing.T) {
	assert.Equal(t, 0.05, ConvertToFloat64("0.05"))
	assert.Equal(t, 0.0, ConvertToFloat64("abc"))
}
