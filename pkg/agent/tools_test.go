package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		reg := NewToolRegistry()
		require.NoError(t, reg.Register(echoTool("echo")))

		tool, ok := reg.Get("echo")
		require.True(t, ok)
		assert.Equal(t, "echo", tool.Definition.Name)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		reg := NewToolRegistry()
		require.NoError(t, reg.Register(echoTool("echo")))
		assert.ErrorIs(t, reg.Register(echoTool("echo")), ErrToolExists)
	})

	t.Run("nameless tool rejected", func(t *testing.T) {
		reg := NewToolRegistry()
		assert.Error(t, reg.Register(&Tool{}))
		assert.Error(t, reg.Register(nil))
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		reg := NewToolRegistry()
		require.NoError(t, reg.Register(echoTool("echo")))
		reg.Remove("echo")
		reg.Remove("echo")
		_, ok := reg.Get("echo")
		assert.False(t, ok)
	})

	t.Run("names and definitions sorted", func(t *testing.T) {
		reg := NewToolRegistry()
		require.NoError(t, reg.Register(echoTool("zeta")))
		require.NoError(t, reg.Register(echoTool("alpha")))
		require.NoError(t, reg.Register(echoTool("mid")))

		assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.Names())
		defs := reg.Definitions()
		require.Len(t, defs, 3)
		assert.Equal(t, "alpha", defs[0].Name)
		assert.Equal(t, "zeta", defs[2].Name)
	})
}
