package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, "512B", SizeLabel(512))
	assert.Equal(t, "1KB", SizeLabel(1024))
	assert.Equal(t, "64KB", SizeLabel(65536))
	assert.Equal(t, "1MB", SizeLabel(1048576))
	assert.Equal(t, "2MB", SizeLabel(2097152))
}

func TestSizeLabelRoundsDown(t *testing.T) {
	// integral division, no fractional labels
	assert.Equal(t, "1KB", SizeLabel(1536))
	assert.Equal(t, "1MB", SizeLabel(1048577))
	assert.Equal(t, "0B", SizeLabel(0))
}
