package scoring

import (
	"fmt"
	"math"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
)

// FactorResult captures one attribute's contribution to a match score.
type FactorResult struct {
	Name     Attribute `json:"name"`
	Score    float64   `json:"score"`
	Weight   float64   `json:"weight"`
	Weighted float64   `json:"weighted"`
	Reason   string    `json:"reason"`
}

// Explanation is the full breakdown behind one MatchResult.
type Explanation struct {
	CarID            string           `json:"car_id"`
	Weights          AttributeWeights `json:"weights"`
	Factors          []FactorResult   `json:"factors"`
	BaseScore        float64          `json:"base_score"`
	BudgetAdjustment float64          `json:"budget_adjustment"`
	FinalScore       float64          `json:"final_score"`
	MatchScore       int              `json:"match_score"`
	Highlights       []string         `json:"highlights"`
}

// Explain recomputes a vehicle's score attribute by attribute. The factor
// sum equals BaseScore and MatchScore equals what Rank reports.
func Explain(p catalog.VehicleProfile, w AttributeWeights, budget float64) Explanation {
	values := profileValues(p)
	weights := w.asList()

	factors := make([]FactorResult, len(Attributes))
	var base float64
	for i, attr := range Attributes {
		score := float64(values[i]) / 10
		weighted := weights[i] * score
		base += weighted
		factors[i] = FactorResult{
			Name:     attr,
			Score:    score,
			Weight:   weights[i],
			Weighted: weighted,
			Reason:   fmt.Sprintf("rated %d/10", values[i]),
		}
	}

	adj := BudgetAdjustment(p.MSRP, budget)
	final := base * adj
	return Explanation{
		CarID:            p.CarID,
		Weights:          w,
		Factors:          factors,
		BaseScore:        base,
		BudgetAdjustment: adj,
		FinalScore:       final,
		MatchScore:       int(math.Round(final * 100)),
		Highlights:       highlights(p, w, budget),
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
