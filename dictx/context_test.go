package dictx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	di "github.com/johnrutherford/di-lite"
	"github.com/johnrutherford/di-lite/dictx"
	"github.com/johnrutherford/di-lite/internal/testtypes"
)

func Test_Container(t *testing.T) {
	t.Run("with container", func(t *testing.T) {
		c := di.NewContainer()

		ctx := dictx.WithContainer(context.Background(), c)
		got := dictx.Container(ctx)

		assert.Same(t, c, got)
	})

	t.Run("no container", func(t *testing.T) {
		got := dictx.Container(context.Background())
		assert.Nil(t, got)
	})
}

func Test_Resolve(t *testing.T) {
	t.Run("resolve", func(t *testing.T) {
		p := di.New(func(*di.Container) (testtypes.InterfaceA, error) {
			return testtypes.NewInterfaceA(), nil
		})

		c := di.NewContainer()
		ctx := dictx.WithContainer(context.Background(), c)

		got, err := dictx.Resolve(ctx, p)
		require.NoError(t, err)
		assert.NotNil(t, got)

		// Same cache as resolving through the container directly.
		direct, err := di.Resolve(c, p)
		require.NoError(t, err)
		assert.Same(t, got, direct)
	})

	t.Run("no container on context", func(t *testing.T) {
		p := di.New(func(*di.Container) (testtypes.InterfaceA, error) {
			return testtypes.NewInterfaceA(), nil
		}, di.WithLabel("service a"))

		_, err := dictx.Resolve(context.Background(), p)
		assert.EqualError(t, err, "resolve service a from context: container not found on context")
	})
}

func Test_MustResolve(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p := di.New(func(*di.Container) (testtypes.InterfaceA, error) {
			return testtypes.NewInterfaceA(), nil
		})

		ctx := dictx.WithContainer(context.Background(), di.NewContainer())

		got := dictx.MustResolve(ctx, p)
		assert.NotNil(t, got)
	})

	t.Run("panics without container", func(t *testing.T) {
		p := di.New(func(*di.Container) (testtypes.InterfaceA, error) {
			return testtypes.NewInterfaceA(), nil
		}, di.WithLabel("service a"))

		assert.PanicsWithError(t,
			"resolve service a from context: container not found on context",
			func() {
				dictx.MustResolve(context.Background(), p)
			},
		)
	})
}
