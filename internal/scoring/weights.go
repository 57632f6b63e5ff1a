package scoring

import (
	"fmt"
	"math"
)

// Attribute names the vehicle dimensions a shopper can care about.
type Attribute string

const (
	AttrPower           Attribute = "power"
	AttrSafety          Attribute = "safety"
	AttrEfficiency      Attribute = "efficiency"
	AttrComfort         Attribute = "comfort"
	AttrTech            Attribute = "tech"
	AttrQuietness       Attribute = "quietness"
	AttrMaintenanceEase Attribute = "maintenance_ease"
	AttrCargo           Attribute = "cargo"
)

// Attributes lists every attribute in scoring order.
var Attributes = []Attribute{
	AttrPower, AttrSafety, AttrEfficiency, AttrComfort,
	AttrTech, AttrQuietness, AttrMaintenanceEase, AttrCargo,
}

// AttributeWeights is a preference vector over vehicle attributes.
// Synthesized vectors sum to 1.0 (±0.001 tolerance).
type AttributeWeights struct {
	Power           float64 `json:"power"`
	Safety          float64 `json:"safety"`
	Efficiency      float64 `json:"efficiency"`
	Comfort         float64 `json:"comfort"`
	Tech            float64 `json:"tech"`
	Quietness       float64 `json:"quietness"`
	MaintenanceEase float64 `json:"maintenance_ease"`
	Cargo           float64 `json:"cargo"`
}

// Sum returns the total of all weights.
func (w AttributeWeights) Sum() float64 {
	return w.Power + w.Safety + w.Efficiency + w.Comfort +
		w.Tech + w.Quietness + w.MaintenanceEase + w.Cargo
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w AttributeWeights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for i, v := range w.asList() {
		if v < 0 {
			return fmt.Errorf("negative %s weight: %f", Attributes[i], v)
		}
	}
	return nil
}

// Add returns the element-wise sum.
func (w AttributeWeights) Add(o AttributeWeights) AttributeWeights {
	return AttributeWeights{
		Power:           w.Power + o.Power,
		Safety:          w.Safety + o.Safety,
		Efficiency:      w.Efficiency + o.Efficiency,
		Comfort:         w.Comfort + o.Comfort,
		Tech:            w.Tech + o.Tech,
		Quietness:       w.Quietness + o.Quietness,
		MaintenanceEase: w.MaintenanceEase + o.MaintenanceEase,
		Cargo:           w.Cargo + o.Cargo,
	}
}

// Normalize scales the vector to sum to 1.0. A zero vector is returned as is.
func (w AttributeWeights) Normalize() AttributeWeights {
	total := w.Sum()
	if total == 0 {
		return w
	}
	return AttributeWeights{
		Power:           w.Power / total,
		Safety:          w.Safety / total,
		Efficiency:      w.Efficiency / total,
		Comfort:         w.Comfort / total,
		Tech:            w.Tech / total,
		Quietness:       w.Quietness / total,
		MaintenanceEase: w.MaintenanceEase / total,
		Cargo:           w.Cargo / total,
	}
}

// Get returns the weight for one attribute.
func (w AttributeWeights) Get(a Attribute) float64 {
	for i, attr := range Attributes {
		if attr == a {
			return w.asList()[i]
		}
	}
	return 0
}

func (w AttributeWeights) asList() []float64 {
	return []float64{
		w.Power, w.Safety, w.Efficiency, w.Comfort,
		w.Tech, w.Quietness, w.MaintenanceEase, w.Cargo,
	}
}
