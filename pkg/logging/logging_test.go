package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAssignsDistinctInstanceIDs(t *testing.T) {
	a := New("gain")
	b := New("gain")
	assert.NotEqual(t, a.InstanceID, b.InstanceID)
}

func TestWithFieldsReturnsUsableLogger(t *testing.T) {
	lg := New("gain").WithFields("voice", 3)
	assert.NotNil(t, lg)
}
