package adass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_ScopeUnchanged(t *testing.T) {
	score := Calculate("S:U/C:H/I:H/A:H/AC:L/PR:L")
	assert.InDelta(t, 8.8, score, 0.0001)
}

func TestCalculate_ScopeChanged(t *testing.T) {
	score := Calculate("S:C/C:H/I:H/A:H/AC:L/PR:L")
	assert.InDelta(t, 9.9, score, 0.0001)
}

func TestParseVector_DefaultsAppliedWhenOmitted(t *testing.T) {
	v := ParseVector("C:L/I:L/A:N")
	assert.Equal(t, "U", v.values["S"])
	assert.Equal(t, "NA", v.values["AC"])
	assert.Equal(t, "NA", v.values["PR"])
}

func TestParseVector_InvalidValueCodeIgnored(t *testing.T) {
	v := ParseVector("C:BOGUS/I:H/A:H")
	_, ok := v.values["C"]
	assert.False(t, ok)
}

func TestParseVector_ScopeChangeUpgradesVariants(t *testing.T) {
	v := ParseVector("S:C/C:H/I:H/A:H/AC:L/PR:L")
	assert.Equal(t, "L_S", v.values["PR"])
}

func TestRoundUp(t *testing.T) {
	assert.InDelta(t, 8.8, RoundUp(8.709, 1), 0.0001)
	assert.InDelta(t, 10.0, RoundUp(10.0, 1), 0.0001)
}
