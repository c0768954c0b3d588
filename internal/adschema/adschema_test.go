package adschema

import (
	"testing"

	"github.com/cadra/cadra/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDeriveUACFlags(t *testing.T) {
	props := map[string]interface{}{
		"enabled":         false,
		"pwdneverexpires": true,
		"sensitive":       false,
	}
	flags := DeriveUACFlags(props)
	assert.True(t, flags[models.UACAccountDisable])
	assert.True(t, flags[models.UACDontExpirePasswd])
	assert.False(t, flags[models.UACNotDelegated])
}

func TestResolveProperty_UACFlagTakesPrecedence(t *testing.T) {
	raw := map[string]interface{}{"enabled": false}
	node := models.NewUser("u1", raw, DeriveUACFlags(raw))

	v, ok := ResolveProperty(node, "ACCOUNTDISABLE")
	assert.True(t, ok)
	assert.Equal(t, true, v)
}

func TestResolveProperty_FallsThroughToGeneric(t *testing.T) {
	node := models.NewNode("n1", models.NodeTypeComputer, map[string]interface{}{})
	v, ok := ResolveProperty(node, "highvalue")
	assert.True(t, ok)
	assert.Equal(t, false, v)
}

func TestResolveProperty_PrincipalPropertiesOnlyForUser(t *testing.T) {
	computer := models.NewNode("c1", models.NodeTypeComputer, map[string]interface{}{})
	_, ok := ResolveProperty(computer, "samaccountname")
	assert.False(t, ok)

	user := models.NewUser("u2", map[string]interface{}{}, map[models.UACFlag]bool{})
	v, ok := ResolveProperty(user, "samaccountname")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestResolveProperty_MissingEverywhere(t *testing.T) {
	node := models.NewNode("n1", models.NodeTypeComputer, map[string]interface{}{})
	_, ok := ResolveProperty(node, "nonexistent")
	assert.False(t, ok)
}
