package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_Equality(t *testing.T) {
	out, err := Compare("==", "ADMIN", "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, Matched, out)

	out, err = Compare("!=", true, "false")
	require.NoError(t, err)
	assert.Equal(t, Matched, out)
}

func TestCompare_NumericOrdering(t *testing.T) {
	out, err := Compare(">", "0x10", 10)
	require.NoError(t, err)
	assert.Equal(t, Matched, out)

	out, err = Compare("<=", 5, "5")
	require.NoError(t, err)
	assert.Equal(t, Matched, out)
}

func TestCompare_InAndAny(t *testing.T) {
	out, err := Compare("in", []interface{}{"A", "B", "C"}, []interface{}{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, Matched, out)

	out, err = Compare("not in", []interface{}{"A", "B"}, []interface{}{"Z"})
	require.NoError(t, err)
	assert.Equal(t, Matched, out)

	out, err = Compare("any", "DOMAIN ADMINS", "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, Matched, out)
}

func TestCompare_SetNotset(t *testing.T) {
	out, err := Compare("set", "", nil)
	require.NoError(t, err)
	assert.Equal(t, Unmatched, out)

	out, err = Compare("notset", "null", nil)
	require.NoError(t, err)
	assert.Equal(t, Matched, out)
}

func TestCompare_StartsEndsWith(t *testing.T) {
	out, err := Compare("startswith", "krbtgt", "krb")
	require.NoError(t, err)
	assert.Equal(t, Matched, out)

	out, err = Compare("endswith", "service$", "$")
	require.NoError(t, err)
	assert.Equal(t, Matched, out)
}

func TestCompare_OlderThan(t *testing.T) {
	farPast := int64(1)
	out, err := Compare("older_than", farPast, "1 day")
	require.NoError(t, err)
	assert.Equal(t, Matched, out)
}

func TestCompare_InvalidOperator(t *testing.T) {
	_, err := Compare("bogus", 1, 2)
	assert.Error(t, err)
}

func TestCompare_NilOperandNonEquality(t *testing.T) {
	out, err := Compare(">", nil, 5)
	require.NoError(t, err)
	assert.Equal(t, Unmatched, out)
}
