package di_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	di "github.com/johnrutherford/di-lite"
	"github.com/johnrutherford/di-lite/internal/testtypes"
)

func Test_New(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := di.New(func(*di.Container) (testtypes.InterfaceA, error) {
			return testtypes.NewInterfaceA(), nil
		})

		assert.Same(t, di.Singleton, p.Scope())
		assert.Equal(t, "Provider[testtypes.InterfaceA]", p.Label())
	})

	t.Run("default label uses the concrete type", func(t *testing.T) {
		p := di.New(func(*di.Container) (*testtypes.StructA, error) {
			return &testtypes.StructA{}, nil
		})

		assert.Equal(t, "Provider[*testtypes.StructA]", p.Label())
	})

	t.Run("with scope", func(t *testing.T) {
		scope := di.NewScope("feature")
		p := di.New(func(*di.Container) (testtypes.InterfaceA, error) {
			return testtypes.NewInterfaceA(), nil
		}, di.WithScope(scope))

		assert.Same(t, scope, p.Scope())
	})

	t.Run("with label", func(t *testing.T) {
		p := di.New(func(*di.Container) (testtypes.InterfaceA, error) {
			return testtypes.NewInterfaceA(), nil
		}, di.WithLabel("service a"))

		assert.Equal(t, "service a", p.Label())
		assert.Equal(t, "service a", p.String())
	})
}
