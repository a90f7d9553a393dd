package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantDisplay(t *testing.T) {
	assert.Equal(t, []Variant{TwoCopy, OneCopy, ZeroCopy}, Variants())
	assert.Equal(t, "Two-Copy", TwoCopy.Label())
	assert.Equal(t, "One-Copy", OneCopy.Label())
	assert.Equal(t, "Zero-Copy", ZeroCopy.Label())
}

func TestVariantIdentityIsDistinct(t *testing.T) {
	files := map[string]bool{}
	colors := map[string]bool{}
	for _, v := range Variants() {
		assert.NotEmpty(t, v.FileName())
		files[v.FileName()] = true
		c := v.Color()
		colors[string([]byte{c.R, c.G, c.B})] = true
	}
	assert.Len(t, files, 3)
	assert.Len(t, colors, 3)
}
