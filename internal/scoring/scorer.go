package scoring

import (
	"log/slog"
	"math"
	"sort"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
	"github.com/MikeSquared-Agency/Showroom/internal/quiz"
)

// Highlight thresholds: an attribute is called out when the vehicle rates it
// at least highlightMinScore and the shopper's weight on it clears the cutoff.
const (
	highlightMinScore   = 8
	powerHighlightCut   = 0.2
	defaultHighlightCut = 0.18
)

const (
	HighlightPower       = "Powertrain tuned for drivers who enjoy quick acceleration"
	HighlightQuietness   = "Exceptional cabin isolation for peaceful drives"
	HighlightTech        = "Rich technology suite that matches your tech comfort"
	HighlightCargo       = "Flexible cargo space for your hauling priorities"
	HighlightMaintenance = "Low-effort ownership aligned with your maintenance style"
	HighlightBudget      = "Stays within your budget preference"
	HighlightBalanced    = "Balanced match across performance, comfort, and ownership experience"
)

// MatchResult is one vehicle's fit for a shopper.
type MatchResult struct {
	CarID      string   `json:"car_id"`
	MatchScore int      `json:"match_score"`
	Highlights []string `json:"highlights"`
}

// Synthesize merges the four persona rows into one normalized preference
// vector, then applies the priority sliders when present.
func Synthesize(r quiz.Responses) AttributeWeights {
	merged := DrivingTable[r.Driving].
		Add(SensoryTable[r.Sensory]).
		Add(TechTable[r.Tech]).
		Add(MaintenanceTable[r.Maintenance]).
		Normalize()

	if r.Priorities == nil {
		return merged
	}
	return ApplyPriorities(merged, *r.Priorities)
}

// ApplyPriorities boosts safety, power and cargo by 1 + slider/10 and
// re-normalizes. Sliders are clamped to 0-10.
func ApplyPriorities(w AttributeWeights, p quiz.Priorities) AttributeWeights {
	boost := func(v float64) float64 { return 1 + clamp(v, 0, 10)/10 }

	w.Safety *= boost(p.Safety)
	w.Power *= boost(p.Performance)
	w.Cargo *= boost(p.Cargo)
	return w.Normalize()
}

// BudgetAdjustment rewards vehicles under budget by up to 20% and penalizes
// vehicles over budget by up to 40%. A non-positive budget is neutral.
func BudgetAdjustment(msrp, budget float64) float64 {
	if budget <= 0 {
		return 1
	}
	if msrp <= budget {
		savingsRatio := (budget - msrp) / budget
		return 1 + math.Min(0.2, savingsRatio*0.5)
	}
	overRatio := (msrp - budget) / budget
	return math.Max(0.6, 1-math.Min(0.4, overRatio*0.6))
}

// BaseScore is the weighted average of the profile's attributes, each
// normalized to 0-1.
func BaseScore(p catalog.VehicleProfile, w AttributeWeights) float64 {
	weights := w.asList()
	var total float64
	for i, v := range profileValues(p) {
		total += weights[i] * (float64(v) / 10)
	}
	return total
}

// Rank scores every profile against the responses and returns results in
// descending score order. Equal scores keep catalog order.
func Rank(profiles []catalog.VehicleProfile, r quiz.Responses) []MatchResult {
	prefs := Synthesize(r)

	results := make([]MatchResult, 0, len(profiles))
	for _, p := range profiles {
		score := BaseScore(p, prefs) * BudgetAdjustment(p.MSRP, r.Budget)
		results = append(results, MatchResult{
			CarID:      p.CarID,
			MatchScore: int(math.Round(score * 100)),
			Highlights: highlights(p, prefs, r.Budget),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

func highlights(p catalog.VehicleProfile, w AttributeWeights, budget float64) []string {
	var out []string
	if p.Power >= highlightMinScore && w.Power > powerHighlightCut {
		out = append(out, HighlightPower)
	}
	if p.Quietness >= highlightMinScore && w.Quietness > defaultHighlightCut {
		out = append(out, HighlightQuietness)
	}
	if p.Tech >= highlightMinScore && w.Tech > defaultHighlightCut {
		out = append(out, HighlightTech)
	}
	if p.Cargo >= highlightMinScore && w.Cargo > defaultHighlightCut {
		out = append(out, HighlightCargo)
	}
	if p.MaintenanceEase >= highlightMinScore && w.MaintenanceEase > defaultHighlightCut {
		out = append(out, HighlightMaintenance)
	}
	if p.MSRP <= budget {
		out = append(out, HighlightBudget)
	}
	if len(out) == 0 {
		out = append(out, HighlightBalanced)
	}
	return out
}

func profileValues(p catalog.VehicleProfile) []int {
	return []int{
		p.Power, p.Safety, p.Efficiency, p.Comfort,
		p.Tech, p.Quietness, p.MaintenanceEase, p.Cargo,
	}
}

// Matcher ranks the catalog for a shopper and trims to the configured top N.
type Matcher struct {
	profiles []catalog.VehicleProfile
	topN     int
	logger   *slog.Logger
}

// NewMatcher creates a Matcher over the given profiles. topN <= 0 returns
// every vehicle.
func NewMatcher(profiles []catalog.VehicleProfile, topN int, logger *slog.Logger) *Matcher {
	return &Matcher{
		profiles: profiles,
		topN:     topN,
		logger:   logger,
	}
}

// Match ranks all profiles and returns at most limit results. limit <= 0
// falls back to the matcher's top N.
func (m *Matcher) Match(r quiz.Responses, limit int) []MatchResult {
	results := Rank(m.profiles, r)

	n := m.topN
	if limit > 0 {
		n = limit
	}
	if n > 0 && n < len(results) {
		results = results[:n]
	}

	if len(results) > 0 {
		m.logger.Debug("ranked vehicles",
			"driving", r.Driving,
			"sensory", r.Sensory,
			"tech", r.Tech,
			"maintenance", r.Maintenance,
			"budget", r.Budget,
			"top_car", results[0].CarID,
			"top_score", results[0].MatchScore,
		)
	}
	return results
}

// Profile returns the profile for a car id from the matcher's table.
func (m *Matcher) Profile(carID string) (catalog.VehicleProfile, bool) {
	for _, p := range m.profiles {
		if p.CarID == carID {
			return p, true
		}
	}
	return catalog.VehicleProfile{}, false
}
