package similarity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/stretchr/testify/assert"
)

func summaries(descriptions ...string) []models.IncidentSummary {
	out := make([]models.IncidentSummary, len(descriptions))
	for i, d := range descriptions {
		out[i] = models.IncidentSummary{ID: uuid.New(), Description: d}
	}
	return out
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Heavy traffic, near BOLE-road!! on a hill (km 12)")
	assert.Equal(t, []string{"heavy", "traffic", "near", "bole", "road", "hill"}, tokens)
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("a an to ?? !!"))
}

func TestCompute_EmptyExisting(t *testing.T) {
	e := NewEngine(DefaultThreshold)
	assert.Equal(t, Result{}, e.Compute("Heavy traffic due to construction", nil))
	assert.Equal(t, Result{}, e.Compute("", []models.IncidentSummary{}))
}

func TestCompute_IdenticalText(t *testing.T) {
	e := NewEngine(DefaultThreshold)
	text := "Heavy traffic due to construction work on Bole Road"

	res := e.Compute(text, summaries(text))

	assert.Equal(t, 1, res.SimilarCount)
	assert.InDelta(t, 1.0, res.AverageSimilarity, 1e-9)
	assert.InDelta(t, 1.0, res.MaxSimilarity, 1e-9)
}

func TestCompute_IdenticalAmongOthers(t *testing.T) {
	e := NewEngine(DefaultThreshold)
	text := "Heavy traffic due to construction work on Bole Road"

	res := e.Compute(text, summaries(text, "Minibus overturned near Megenagna roundabout"))

	assert.Equal(t, 1, res.SimilarCount)
	assert.InDelta(t, 1.0, res.MaxSimilarity, 1e-9)
	assert.InDelta(t, 0.5, res.AverageSimilarity, 1e-9)
}

func TestCompute_UnrelatedText(t *testing.T) {
	e := NewEngine(DefaultThreshold)

	res := e.Compute("Completely unrelated text about weather",
		summaries("Heavy traffic accident major collision"))

	assert.Equal(t, 0, res.SimilarCount)
	assert.InDelta(t, 0.0, res.AverageSimilarity, 1e-9)
	assert.InDelta(t, 0.0, res.MaxSimilarity, 1e-9)
}

func TestCompute_EmptyDescriptions(t *testing.T) {
	e := NewEngine(DefaultThreshold)

	res := e.Compute("", summaries("", "Heavy traffic on Bole Road"))
	assert.Equal(t, Result{}, res)

	res = e.Compute("Heavy traffic on Bole Road", summaries("!!"))
	assert.Equal(t, Result{}, res)
}

func TestCompute_BoundsAndDeterminism(t *testing.T) {
	e := NewEngine(DefaultThreshold)
	existing := summaries(
		"Truck accident blocking two lanes near Mexico square",
		"Accident with truck near Mexico square, two lanes blocked",
		"Road construction on Ring Road causing delays",
		"Heavy congestion around Meskel square",
	)
	text := "Truck accident near Mexico square blocking lanes"

	first := e.Compute(text, existing)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Compute(text, existing))
	}

	assert.GreaterOrEqual(t, first.AverageSimilarity, 0.0)
	assert.LessOrEqual(t, first.MaxSimilarity, 1.0)
	assert.GreaterOrEqual(t, first.MaxSimilarity, first.AverageSimilarity)
}

func TestCosineSimilarity_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity([]float64{1, 2}, []float64{1}))
	assert.Equal(t, 0.0, CosineSimilarity([]float64{0, 0}, []float64{1, 1}))
	assert.InDelta(t, 1.0, CosineSimilarity([]float64{1, 2}, []float64{2, 4}), 1e-12)
}

func TestScoreBoost_Tiers(t *testing.T) {
	s := NewScorer(DefaultBoost)

	tests := []struct {
		name string
		res  Result
		want float64
	}{
		{name: "full boost", res: Result{SimilarCount: 3, AverageSimilarity: 0.8}, want: 0.2},
		{name: "half boost", res: Result{SimilarCount: 2, AverageSimilarity: 0.65}, want: 0.1},
		{name: "three reports, weak average", res: Result{SimilarCount: 3, AverageSimilarity: 0.65}, want: 0.1},
		{name: "single strong report", res: Result{SimilarCount: 1, AverageSimilarity: 0.9}, want: 0},
		{name: "nothing", res: Result{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.ScoreBoost(tt.res), 1e-12)
		})
	}
}

func TestScoreBoost_Monotonic(t *testing.T) {
	s := NewScorer(DefaultBoost)
	prev := 0.0
	steps := []Result{
		{SimilarCount: 0, AverageSimilarity: 0},
		{SimilarCount: 1, AverageSimilarity: 0.9},
		{SimilarCount: 2, AverageSimilarity: 0.6},
		{SimilarCount: 3, AverageSimilarity: 0.7},
		{SimilarCount: 5, AverageSimilarity: 0.95},
	}
	for _, step := range steps {
		got := s.ScoreBoost(step)
		assert.GreaterOrEqual(t, got, prev)
		assert.GreaterOrEqual(t, got, 0.0)
		prev = got
	}
}

func TestScore_ClampedToUnitInterval(t *testing.T) {
	assert.InDelta(t, 0.7, NewScorer(DefaultBoost).Score(Result{SimilarCount: 3, AverageSimilarity: 0.8}), 1e-12)
	assert.InDelta(t, 0.5, NewScorer(DefaultBoost).Score(Result{SimilarCount: 1, AverageSimilarity: 0.9}), 1e-12)
	assert.Equal(t, 1.0, NewScorer(0.9).Score(Result{SimilarCount: 4, AverageSimilarity: 1}))
}

func TestNewEngine_ThresholdDefaults(t *testing.T) {
	assert.Equal(t, DefaultThreshold, NewEngine(-1).threshold)
	assert.Equal(t, 0.0, NewEngine(0).threshold)
	assert.Equal(t, 0.5, NewEngine(0.5).threshold)

	assert.Equal(t, DefaultBoost, NewScorer(-1).boost)
	assert.Equal(t, 0.0, NewScorer(0).boost)
}

func TestTokenize_ASCIIOnly(t *testing.T) {
	assert.Empty(t, Tokenize("መኪና ተጋጨ በመስቀል አደባባይ"))
	assert.Equal(t, []string{"bole", "road", "blocked"}, Tokenize("Bole road: BLOCKED!"))
}
