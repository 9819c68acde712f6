package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.Com "))
}

func TestNormalizeDisplayName(t *testing.T) {
	assert.Equal(t, "Asha Verma", NormalizeDisplayName("asha", "VERMA"))
	assert.Equal(t, "Asha", NormalizeDisplayName("ASHA", " "))
	assert.Equal(t, "", NormalizeDisplayName("", ""))
}
