package di_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	di "github.com/johnrutherford/di-lite"
)

func Test_NewScope(t *testing.T) {
	t.Run("root scope", func(t *testing.T) {
		s := di.NewScope("feature")
		assert.Nil(t, s.Parent())
		assert.Equal(t, "feature", s.String())
	})

	t.Run("with parent", func(t *testing.T) {
		parent := di.NewScope("parent")
		child := di.NewScope("child", di.WithParent(parent))

		assert.Same(t, parent, child.Parent())
	})

	t.Run("name is diagnostic only", func(t *testing.T) {
		s1 := di.NewScope("feature")
		s2 := di.NewScope("feature")
		assert.NotSame(t, s1, s2)
	})
}

func Test_BuiltinScopes(t *testing.T) {
	assert.Nil(t, di.Singleton.Parent())
	assert.Nil(t, di.Transient.Parent())
	assert.Equal(t, "singleton", di.Singleton.String())
	assert.Equal(t, "transient", di.Transient.String())
}
