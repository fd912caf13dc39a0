package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonLogicExecutor_Execute(t *testing.T) {
	executor := NewJsonLogicExecutor()
	ctx := context.Background()
	data := map[string]interface{}{
		"order": map[string]interface{}{
			"subtotal": 120.0,
			"currency": "USD",
			"skus":     []interface{}{"A", "B"},
		},
	}

	t.Run("standard comparison", func(t *testing.T) {
		out, err := executor.Execute(ctx, map[string]interface{}{
			">=": []interface{}{map[string]interface{}{"var": "order.subtotal"}, 100},
		}, data)
		require.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("membership", func(t *testing.T) {
		out, err := executor.Execute(ctx, map[string]interface{}{
			"in": []interface{}{"B", map[string]interface{}{"var": "order.skus"}},
		}, data)
		require.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("numeric result", func(t *testing.T) {
		out, err := executor.Execute(ctx, map[string]interface{}{
			"*": []interface{}{map[string]interface{}{"var": "order.subtotal"}, 0.5},
		}, data)
		require.NoError(t, err)
		assert.Equal(t, 60.0, out)
	})

	t.Run("custom between operator", func(t *testing.T) {
		out, err := executor.Execute(ctx, map[string]interface{}{
			"between": []interface{}{map[string]interface{}{"var": "order.subtotal"}, 100, 150},
		}, data)
		require.NoError(t, err)
		assert.Equal(t, true, out)

		out, err = executor.Execute(ctx, map[string]interface{}{
			"between": []interface{}{map[string]interface{}{"var": "order.subtotal"}, 0, 99.99},
		}, data)
		require.NoError(t, err)
		assert.Equal(t, false, out)
	})

	t.Run("custom operator over a nested rule", func(t *testing.T) {
		out, err := executor.Execute(ctx, map[string]interface{}{
			"between": []interface{}{
				map[string]interface{}{"+": []interface{}{map[string]interface{}{"var": "order.subtotal"}, 10}},
				130, 130,
			},
		}, data)
		require.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("custom operator inside a compound rule", func(t *testing.T) {
		inRange := map[string]interface{}{
			"between": []interface{}{map[string]interface{}{"var": "order.subtotal"}, 100, 150},
		}
		out, err := executor.Execute(ctx, map[string]interface{}{
			"and": []interface{}{
				inRange,
				map[string]interface{}{"==": []interface{}{map[string]interface{}{"var": "order.currency"}, "USD"}},
			},
		}, data)
		require.NoError(t, err)
		assert.Equal(t, true, out)

		out, err = executor.Execute(ctx, map[string]interface{}{"!": []interface{}{inRange}}, data)
		require.NoError(t, err)
		assert.Equal(t, false, out)

		out, err = executor.Execute(ctx, map[string]interface{}{
			"or": []interface{}{
				map[string]interface{}{"==": []interface{}{map[string]interface{}{"var": "order.currency"}, "EUR"}},
				map[string]interface{}{"between": []interface{}{map[string]interface{}{"var": "order.subtotal"}, 0, 10}},
			},
		}, data)
		require.NoError(t, err)
		assert.Equal(t, false, out)
	})

	t.Run("registered operator wins", func(t *testing.T) {
		custom := NewJsonLogicExecutor()
		custom.RegisterCustomOperator("always", func(args ...interface{}) interface{} { return len(args) == 1 })
		out, err := custom.Execute(ctx, map[string]interface{}{"always": "x"}, data)
		require.NoError(t, err)
		assert.Equal(t, true, out)
	})
}
