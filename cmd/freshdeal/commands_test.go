package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandFlags(t *testing.T) {
	cmd, ok := lookupCommand("cart-add")
	require.True(t, ok)

	f := cmd.flags()
	require.NoError(t, f.fs.Parse([]string{"-restaurant", "3", "-listing", "7", "-yes"}))

	assert.Equal(t, int64(3), f.num("restaurant"))
	assert.Equal(t, int64(7), f.num("listing"))
	assert.True(t, f.on("yes"))
}

func TestCommandFlags_Defaults(t *testing.T) {
	cmd, ok := lookupCommand("rate")
	require.True(t, ok)

	f := cmd.flags()
	require.NoError(t, f.fs.Parse(nil))

	assert.InDelta(t, 5.0, f.float("rating"), 0)
	assert.Empty(t, f.str("comment"))
}

func TestLookupCommand_Unknown(t *testing.T) {
	_, ok := lookupCommand("deploy")
	assert.False(t, ok)
}

func TestCommands_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, cmd := range commands {
		assert.False(t, seen[cmd.name], cmd.name)
		seen[cmd.name] = true
		assert.NotNil(t, cmd.run, cmd.name)
		assert.NotPanics(t, func() { cmd.flags() }, cmd.name)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Empty(t, firstNonEmpty("", ""))
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "Moda Cd. 12, Kadıköy", joinNonEmpty(", ", "Moda Cd. 12", "", "Kadıköy"))
}
