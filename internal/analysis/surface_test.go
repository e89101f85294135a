package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func varsN(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("v%d", i)
	}
	return out
}

func TestFabricatedCorrelationBounds(t *testing.T) {
	wantLen := map[int]int{0: 0, 1: 0, 2: 1, 3: 3, 4: 6, 5: 6, 12: 6}
	for n, want := range wantLen {
		vars := varsN(n)
		s, err := Fabricated{}.Generate(seeded(uint64(n)+1), vars, 10)
		require.NoError(t, err)
		require.Len(t, s.Correlations, want, "n=%d", n)
		allowed := vars[:min(n, 5)]
		for _, c := range s.Correlations {
			assert.Contains(t, allowed, c.Var1)
			assert.Contains(t, allowed, c.Var2)
			assert.GreaterOrEqual(t, c.Coefficient, -0.9)
			assert.LessOrEqual(t, c.Coefficient, 0.9)
			assert.GreaterOrEqual(t, c.Significance, 0.0)
			assert.LessOrEqual(t, c.Significance, 0.05)
		}
	}
}

func TestFabricatedCorrelationOrder(t *testing.T) {
	s, err := Fabricated{}.Generate(seeded(7), varsN(5), 3)
	require.NoError(t, err)
	var pairs []string
	for _, c := range s.Correlations {
		pairs = append(pairs, c.Var1+"-"+c.Var2)
	}
	assert.Equal(t, []string{"v0-v1", "v0-v2", "v0-v3", "v0-v4", "v1-v2", "v1-v3"}, pairs)
}

func TestFabricatedTests(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		s, err := Fabricated{}.Generate(seeded(seed), nil, 0)
		require.NoError(t, err)
		require.Len(t, s.Tests, 4)
		for i, tt := range s.Tests {
			assert.Equal(t, TestCatalogue[i], tt.Name)
			assert.Contains(t, TestCatalogue, tt.Name)
			assert.True(t, tt.Statistic >= 1 && tt.Statistic <= 11, "statistic %v", tt.Statistic)
			assert.True(t, tt.PValue >= 0 && tt.PValue <= 0.05, "p %v", tt.PValue)
			assert.True(t, tt.EffectSize >= 0.2 && tt.EffectSize <= 1.4, "effect %v", tt.EffectSize)
		}
	}
}

func TestFabricatedDuplicateNames(t *testing.T) {
	s, err := Fabricated{}.Generate(seeded(2), []string{"id", "id", "id"}, 1)
	require.NoError(t, err)
	require.Len(t, s.Correlations, 3)
	for _, c := range s.Correlations {
		assert.Equal(t, "id", c.Var1)
		assert.Equal(t, "id", c.Var2)
	}
}
