package analysis

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// maxCorrelationVars bounds which variables may appear in a correlation pair.
	maxCorrelationVars = 5
	// maxCorrelations caps the pair list after generation.
	maxCorrelations = 6
	// maxTests caps how many catalogue entries are reported.
	maxTests = 4
)

// TestCatalogue is the ordered list of test names a surface may report.
var TestCatalogue = []string{
	"Pearson Correlation",
	"Independent t-test",
	"ANOVA",
	"Chi-square test",
	"Regression Analysis",
	"Mann-Whitney U test",
}

// Correlation is a pairwise association between two variables.
type Correlation struct {
	Var1         string  `yaml:"var1"`
	Var2         string  `yaml:"var2"`
	Coefficient  float64 `yaml:"coefficient"`
	Significance float64 `yaml:"significance"`
}

// StatTest is one reported test outcome.
type StatTest struct {
	Name       string  `yaml:"test"`
	Statistic  float64 `yaml:"statistic"`
	PValue     float64 `yaml:"p_value"`
	EffectSize float64 `yaml:"effect_size"`
}

// Surface is the statistical part of an Analysis.
type Surface struct {
	Correlations []Correlation
	Tests        []StatTest
}

// SurfaceGenerator produces the statistical surface for a profiled dataset.
// Implementations see only the variable names and the row count, never cell values.
type SurfaceGenerator interface {
	Generate(rng *rand.Rand, variables []string, sampleSize int) (Surface, error)
}

// Fabricated draws a plausible-looking surface from fixed uniform ranges.
// Nothing it returns is computed from data: coefficients, p-values and effect sizes
// are synthetic placeholders shaped like real output.
type Fabricated struct{}

// Generate implements SurfaceGenerator.
func (Fabricated) Generate(rng *rand.Rand, variables []string, sampleSize int) (Surface, error) {
	return Surface{
		Correlations: fabricateCorrelations(rng, variables),
		Tests:        fabricateTests(rng),
	}, nil
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: rng}.Rand()
}

func fabricateCorrelations(rng *rand.Rand, variables []string) []Correlation {
	n := min(len(variables), maxCorrelationVars)
	var out []Correlation
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Correlation{
				Var1:         variables[i],
				Var2:         variables[j],
				Coefficient:  uniform(rng, -0.9, 0.9),
				Significance: uniform(rng, 0, 0.05),
			})
		}
	}
	if len(out) > maxCorrelations {
		out = out[:maxCorrelations]
	}
	return out
}

func fabricateTests(rng *rand.Rand) []StatTest {
	names := TestCatalogue[:maxTests]
	out := make([]StatTest, 0, len(names))
	for _, name := range names {
		out = append(out, StatTest{
			Name:       name,
			Statistic:  uniform(rng, 1, 11),
			PValue:     uniform(rng, 0, 0.05),
			EffectSize: uniform(rng, 0.2, 1.4),
		})
	}
	return out
}
