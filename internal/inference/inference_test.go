package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/convertsearch/internal/analysis"
)

func TestInferDomainPriorityAndDefault(t *testing.T) {
	cases := []struct {
		vars []string
		want string
	}{
		{[]string{"age", "score"}, "psychology"}, // psychology outranks social
		{[]string{"Student_ID", "GPA"}, "education"},
		{[]string{"region", "Revenue"}, "business"},
		{[]string{"patient", "dose"}, "health"},
		{[]string{"Income", "household"}, "social"},
		{[]string{"x", "y", "z"}, Interdisciplinary},
		{nil, Interdisciplinary},
		{[]string{""}, Interdisciplinary},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, InferDomain(c.vars), "%v", c.vars)
	}
}

func TestInferDomainAlwaysInClosedSet(t *testing.T) {
	closed := Domains()
	for _, vars := range [][]string{{"sales"}, {"q1", "q2"}, {"attitude", "price"}} {
		assert.Contains(t, closed, InferDomain(vars))
	}
}

func TestMethodologyTable(t *testing.T) {
	assert.Equal(t, "Quantitative cross-sectional survey design", Methodology(analysis.Quantitative, 101))
	assert.Equal(t, "Quantitative exploratory design", Methodology(analysis.Quantitative, 100))
	assert.Equal(t, "Qualitative content analysis", Methodology(analysis.Qualitative, 5000))
	assert.Equal(t, "Mixed-methods sequential explanatory design", Methodology(analysis.Mixed, 3))
}

func TestInferMinimalAnalysis(t *testing.T) {
	ctx, err := Infer(&analysis.Analysis{DataType: analysis.Mixed, Variables: []string{""}})
	require.NoError(t, err)
	assert.Equal(t, Interdisciplinary, ctx.Domain)
	assert.Len(t, ctx.ResearchQuestions, 3)
	assert.Len(t, ctx.Hypotheses, 2)
	assert.Len(t, ctx.Limitations, 2)
	assert.Len(t, ctx.Implications, 3)
	assert.Contains(t, ctx.ResearchQuestions[0], "interdisciplinary dataset")
}

func TestInferConditionalItems(t *testing.T) {
	a := &analysis.Analysis{
		DataType:       analysis.Quantitative,
		SampleSize:     40,
		Variables:      []string{"sales", "price", "units"},
		MissingDataPct: 12,
		OutlierCount:   5,
		Correlations: []analysis.Correlation{
			{Var1: "sales", Var2: "price"},
			{Var1: "sales", Var2: "units"},
			{Var1: "price", Var2: "units"},
		},
		StatisticalTests: []analysis.StatTest{{Name: "ANOVA", PValue: 0.004}},
	}
	ctx, err := Infer(a)
	require.NoError(t, err)
	assert.Equal(t, "business", ctx.Domain)
	assert.Len(t, ctx.ResearchQuestions, 4)
	assert.Len(t, ctx.Hypotheses, 3)
	assert.Equal(t, []string{
		"Cross-sectional design limits causal inference capabilities",
		"Sample characteristics may limit generalizability to broader populations",
		"Missing data (12%) may affect result reliability",
		"Presence of outliers may influence statistical conclusions",
	}, ctx.Limitations)
	assert.Len(t, ctx.Implications, 4)
	assert.Equal(t, "Strong statistical significance supports robust conclusions", ctx.Implications[3])
}

func TestInferBoundaryConditionsAreStrict(t *testing.T) {
	a := &analysis.Analysis{
		SampleSize:       100,
		OutlierCount:     10, // exactly 10% is not enough
		MissingDataPct:   5,  // exactly 5% is not enough
		Correlations:     make([]analysis.Correlation, 2),
		StatisticalTests: []analysis.StatTest{{PValue: 0.01}},
	}
	ctx, err := Infer(a)
	require.NoError(t, err)
	assert.Len(t, ctx.Hypotheses, 2)
	assert.Len(t, ctx.Limitations, 2)
	assert.Len(t, ctx.Implications, 3)
}

func TestInferNil(t *testing.T) {
	_, err := Infer(nil)
	assert.Error(t, err)
}
