package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeISO(t *testing.T) {
	assert.Equal(t, "AFG", NormalizeISO(" afg "))
	assert.Equal(t, "", NormalizeISO("  "))
}

func TestISOSet(t *testing.T) {
	set := ISOSet([]string{"afg", "AFG", " syr", "", "Yem"})
	assert.Len(t, set, 3)
	for _, c := range []string{"AFG", "SYR", "YEM"} {
		_, ok := set[c]
		assert.True(t, ok, c)
	}
}
