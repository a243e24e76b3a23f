package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyStrokeOptionsDefaults(t *testing.T) {
	o := ApplyStrokeOptions()
	assert.Equal(t, DefaultMiterLimit, o.MiterLimit)
	assert.False(t, o.ForceBevel)
	assert.Zero(t, o.Epsilon)
}

func TestWithMiterLimit(t *testing.T) {
	o := ApplyStrokeOptions(WithMiterLimit(5))
	assert.Equal(t, float32(5), o.MiterLimit)
}

func TestWithMiterLimitClampsBelowOne(t *testing.T) {
	o := ApplyStrokeOptions(WithMiterLimit(0.1))
	assert.Equal(t, float32(1), o.MiterLimit)
}

func TestWithBevel(t *testing.T) {
	o := ApplyStrokeOptions(WithBevel(true))
	assert.True(t, o.ForceBevel)
}

func TestWithEpsilonClampsNegative(t *testing.T) {
	o := ApplyStrokeOptions(WithEpsilon(-1))
	assert.Zero(t, o.Epsilon)
}

func TestWithEpsilon(t *testing.T) {
	o := ApplyStrokeOptions(WithEpsilon(0.001))
	assert.Equal(t, float32(0.001), o.Epsilon)
}
