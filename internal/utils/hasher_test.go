package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Hash(""))
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("jane@x.com")
	assert.Len(t, a, 16)
	assert.Equal(t, a, Fingerprint("  Jane@X.com "))
	assert.NotEqual(t, a, Fingerprint("john@x.com"))
}
