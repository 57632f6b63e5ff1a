package scoring

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
	"github.com/MikeSquared-Agency/Showroom/internal/quiz"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultResponses() quiz.Responses {
	return quiz.Responses{
		Driving:     quiz.DrivingBalanced,
		Sensory:     quiz.SensoryBalanced,
		Tech:        quiz.TechConnected,
		Maintenance: quiz.MaintenanceBalanced,
	}
}

func enthusiast() quiz.Responses {
	return quiz.Responses{
		Driving:     quiz.DrivingSpirited,
		Sensory:     quiz.SensorySporty,
		Tech:        quiz.TechCuttingEdge,
		Maintenance: quiz.MaintenanceEnthusiast,
	}
}

func cautious() quiz.Responses {
	return quiz.Responses{
		Driving:     quiz.DrivingCautious,
		Sensory:     quiz.SensoryQuiet,
		Tech:        quiz.TechMinimal,
		Maintenance: quiz.MaintenanceHandsOff,
	}
}

func allResponses() []quiz.Responses {
	var out []quiz.Responses
	for _, d := range []quiz.DrivingStyle{quiz.DrivingCautious, quiz.DrivingBalanced, quiz.DrivingSpirited} {
		for _, s := range []quiz.SensoryPreference{quiz.SensoryQuiet, quiz.SensoryBalanced, quiz.SensorySporty} {
			for _, tc := range []quiz.TechComfort{quiz.TechMinimal, quiz.TechConnected, quiz.TechCuttingEdge} {
				for _, m := range []quiz.MaintenanceApproach{quiz.MaintenanceHandsOff, quiz.MaintenanceBalanced, quiz.MaintenanceEnthusiast} {
					out = append(out, quiz.Responses{Driving: d, Sensory: s, Tech: tc, Maintenance: m})
				}
			}
		}
	}
	return out
}

func carIDs(results []MatchResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.CarID
	}
	return ids
}

func indexOf(results []MatchResult, carID string) int {
	for i, r := range results {
		if r.CarID == carID {
			return i
		}
	}
	return -1
}

func TestTablesCoverEveryPersona(t *testing.T) {
	assert.Len(t, DrivingTable, 3)
	assert.Len(t, SensoryTable, 3)
	assert.Len(t, TechTable, 3)
	assert.Len(t, MaintenanceTable, 3)
}

func TestSynthesizeNormalizes(t *testing.T) {
	for _, r := range allResponses() {
		w := Synthesize(r)
		require.NoError(t, w.Validate(), "responses %+v", r)
	}
}

func TestSynthesizeDefaults(t *testing.T) {
	w := Synthesize(defaultResponses())
	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
	assert.InDelta(t, 0.1619, w.Safety, 0.0001)
	assert.InDelta(t, 0.0769, w.Quietness, 0.0001)
}

func TestSynthesizeIsPure(t *testing.T) {
	r := enthusiast()
	r.Priorities = &quiz.Priorities{Safety: 3, Performance: 8, Cargo: 1}
	assert.Equal(t, Synthesize(r), Synthesize(r))
	assert.Equal(t, quiz.Priorities{Safety: 3, Performance: 8, Cargo: 1}, *r.Priorities)
}

func TestRankIsIdempotent(t *testing.T) {
	ps := catalog.Profiles()
	for _, r := range allResponses() {
		r.Budget = 35000
		r.Priorities = &quiz.Priorities{Safety: 4, Performance: 7, Cargo: 2}
		assert.Equal(t, Rank(ps, r), Rank(ps, r), "%+v", r)
	}
	assert.Equal(t, catalog.Profiles(), ps, "ranking must not modify profiles")
}

func TestApplyPriorities(t *testing.T) {
	base := Synthesize(defaultResponses())

	t.Run("zero sliders leave weights unchanged", func(t *testing.T) {
		w := ApplyPriorities(base, quiz.Priorities{})
		assert.InDelta(t, base.Power, w.Power, 1e-12)
		assert.InDelta(t, base.Cargo, w.Cargo, 1e-12)
	})

	t.Run("performance raises power share", func(t *testing.T) {
		w := ApplyPriorities(base, quiz.Priorities{Performance: 10})
		assert.Greater(t, w.Power, base.Power)
		assert.Less(t, w.Comfort, base.Comfort)
		assert.NoError(t, w.Validate())
	})

	t.Run("sliders are clamped", func(t *testing.T) {
		over := ApplyPriorities(base, quiz.Priorities{Safety: 25, Cargo: -4})
		capped := ApplyPriorities(base, quiz.Priorities{Safety: 10, Cargo: 0})
		assert.InDelta(t, capped.Safety, over.Safety, 1e-12)
		assert.InDelta(t, capped.Cargo, over.Cargo, 1e-12)
	})

	t.Run("synthesize applies priorities when set", func(t *testing.T) {
		r := defaultResponses()
		r.Priorities = &quiz.Priorities{Cargo: 10}
		assert.InDelta(t, 0.1771, Synthesize(r).Cargo, 0.0001)
	})
}

func TestBudgetAdjustment(t *testing.T) {
	tests := []struct {
		name         string
		msrp, budget float64
		want         float64
	}{
		{"no budget", 40000, 0, 1.0},
		{"negative budget", 40000, -5, 1.0},
		{"exactly on budget", 30000, 30000, 1.0},
		{"slightly under", 27000, 30000, 1.05},
		{"bonus capped", 10000, 30000, 1.2},
		{"over budget", 45000, 30000, 0.7},
		{"penalty floor", 90000, 30000, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BudgetAdjustment(tt.msrp, tt.budget), 1e-9)
		})
	}
}

func TestBudgetAdjustmentBounds(t *testing.T) {
	for _, budget := range []float64{0, 15000, 30000, 45000, 80000} {
		for _, p := range catalog.Profiles() {
			adj := BudgetAdjustment(p.MSRP, budget)
			assert.GreaterOrEqual(t, adj, 0.6)
			assert.LessOrEqual(t, adj, 1.2)
		}
	}
}

func TestRankReturnsEveryVehicleSorted(t *testing.T) {
	profiles := catalog.Profiles()
	for _, r := range allResponses() {
		results := Rank(profiles, r)
		require.Len(t, results, len(profiles))
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].MatchScore, results[i].MatchScore)
		}
		for _, res := range results {
			assert.GreaterOrEqual(t, res.MatchScore, 0)
			assert.LessOrEqual(t, res.MatchScore, 120)
			assert.NotEmpty(t, res.Highlights)
		}
	}
}

func TestRankDefaultsKeepCatalogOrderOnTies(t *testing.T) {
	results := Rank(catalog.Profiles(), defaultResponses())
	assert.Equal(t, []string{"10", "11", "4"}, carIDs(results[:3]))
	assert.Equal(t, 79, results[0].MatchScore)
	assert.Equal(t, 79, results[1].MatchScore)

	// 4Runner and Tacoma share every attribute; only MSRP differs.
	assert.Less(t, indexOf(results, "6"), indexOf(results, "7"))
	for _, res := range results {
		assert.Equal(t, []string{HighlightBalanced}, res.Highlights)
	}
}

func TestRankCautiousShopperOnBudget(t *testing.T) {
	r := cautious()
	r.Budget = 30000
	results := Rank(catalog.Profiles(), r)

	require.NotEmpty(t, results)
	assert.Equal(t, "3", results[0].CarID)
	assert.Equal(t, 83, results[0].MatchScore)
	assert.Equal(t, []string{HighlightMaintenance, HighlightBudget}, results[0].Highlights)

	last := results[len(results)-1]
	assert.NotContains(t, last.Highlights, HighlightBudget)
}

func TestRankEnthusiastHighlights(t *testing.T) {
	results := Rank(catalog.Profiles(), enthusiast())
	top := results[0]
	assert.Contains(t, []string{"13", "14"}, top.CarID)
	assert.Equal(t, []string{HighlightPower, HighlightTech}, top.Highlights)

	idx := indexOf(results, "2")
	require.NotEqual(t, -1, idx)
	assert.Equal(t, []string{HighlightBalanced}, results[idx].Highlights)
}

func TestRankPerformancePriority(t *testing.T) {
	r := enthusiast()
	r.Priorities = &quiz.Priorities{Performance: 10}
	results := Rank(catalog.Profiles(), r)
	assert.Equal(t, "9", results[0].CarID)
	assert.Equal(t, []string{HighlightPower}, results[0].Highlights)
}

func TestRankPerformanceMonotonicity(t *testing.T) {
	profiles := catalog.Profiles()
	for _, r := range allResponses() {
		low, high := r, r
		low.Priorities = &quiz.Priorities{Performance: 0}
		high.Priorities = &quiz.Priorities{Performance: 10}

		lowResults := Rank(profiles, low)
		highResults := Rank(profiles, high)

		// GR Supra (power 10) never loses ground to Corolla (power 4).
		gapLow := indexOf(lowResults, "8") - indexOf(lowResults, "3")
		gapHigh := indexOf(highResults, "8") - indexOf(highResults, "3")
		assert.LessOrEqual(t, gapHigh, gapLow, "responses %+v", r)
	}
}

func TestRankEmptyProfiles(t *testing.T) {
	assert.Empty(t, Rank(nil, defaultResponses()))
}

func TestRankDoesNotMutateProfiles(t *testing.T) {
	profiles := catalog.Profiles()
	before := append([]catalog.VehicleProfile(nil), profiles...)
	Rank(profiles, enthusiast())
	assert.Equal(t, before, profiles)
}

func TestExplainMatchesRank(t *testing.T) {
	r := cautious()
	r.Budget = 30000
	weights := Synthesize(r)
	results := Rank(catalog.Profiles(), r)

	for _, res := range results {
		p, ok := catalog.Lookup(res.CarID)
		require.True(t, ok)
		exp := Explain(p, weights, r.Budget)

		assert.Equal(t, res.MatchScore, exp.MatchScore, "car %s", res.CarID)
		assert.Equal(t, res.Highlights, exp.Highlights)
		assert.Len(t, exp.Factors, len(Attributes))

		var sum float64
		for _, f := range exp.Factors {
			sum += f.Weighted
		}
		assert.InDelta(t, exp.BaseScore, sum, 1e-12)
		assert.InDelta(t, BaseScore(p, weights), exp.BaseScore, 1e-12)
	}
}

func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, AttributeWeights{Power: 0.5, Safety: 0.5}.Validate())
	assert.Error(t, AttributeWeights{Power: 0.5}.Validate())
	assert.Error(t, AttributeWeights{Power: 1.2, Safety: -0.2}.Validate())
}

func TestWeightsNormalizeZero(t *testing.T) {
	assert.Equal(t, AttributeWeights{}, AttributeWeights{}.Normalize())
}

func TestWeightsGet(t *testing.T) {
	w := AttributeWeights{Tech: 0.3, Cargo: 0.7}
	assert.Equal(t, 0.3, w.Get(AttrTech))
	assert.Equal(t, 0.7, w.Get(AttrCargo))
	assert.Equal(t, 0.0, w.Get(Attribute("range")))
}

func TestMatcherTrims(t *testing.T) {
	m := NewMatcher(catalog.Profiles(), 3, discardLogger())

	assert.Len(t, m.Match(defaultResponses(), 0), 3)
	assert.Len(t, m.Match(defaultResponses(), 5), 5)
	assert.Len(t, m.Match(defaultResponses(), 100), 15)

	all := NewMatcher(catalog.Profiles(), 0, discardLogger())
	assert.Len(t, all.Match(defaultResponses(), 0), 15)
}

func TestMatcherProfile(t *testing.T) {
	m := NewMatcher(catalog.Profiles(), 3, discardLogger())
	p, ok := m.Profile("8")
	require.True(t, ok)
	assert.Equal(t, 10, p.Power)

	_, ok = m.Profile("nope")
	assert.False(t, ok)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-1, 0, 10))
	assert.Equal(t, 10.0, clamp(11, 0, 10))
	assert.True(t, math.Abs(clamp(4.5, 0, 10)-4.5) < 1e-12)
}
