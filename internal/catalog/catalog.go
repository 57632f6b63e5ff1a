package catalog

import (
	"errors"
	"strings"
)

var ErrUnknownCar = errors.New("unknown car")

type CarType string

const (
	TypeSedan    CarType = "sedan"
	TypeSUV      CarType = "suv"
	TypeSports   CarType = "sports"
	TypeElectric CarType = "electric"
	TypeTruck    CarType = "truck"
	TypeMinivan  CarType = "minivan"
)

// Car is the showroom listing record shown on catalog pages.
type Car struct {
	ID           string  `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Price        float64 `json:"price"`
	Type         CarType `json:"type"`
	Engine       string  `json:"engine"`
	Horsepower   int     `json:"horsepower"`
	Transmission string  `json:"transmission"`
	FuelType     string  `json:"fuel_type"`
	Featured     bool    `json:"featured,omitempty"`
}

// VehicleProfile holds the 1-10 attribute scores the matcher ranks against.
type VehicleProfile struct {
	CarID           string  `json:"car_id"`
	MSRP            float64 `json:"msrp"`
	Power           int     `json:"power"`
	Safety          int     `json:"safety"`
	Efficiency      int     `json:"efficiency"`
	Comfort         int     `json:"comfort"`
	Tech            int     `json:"tech"`
	Quietness       int     `json:"quietness"`
	MaintenanceEase int     `json:"maintenance_ease"`
	Cargo           int     `json:"cargo"`
}

// Filter narrows the car list. Empty fields and "all" match everything.
type Filter struct {
	Search string
	Type   string
	Brand  string
}

// Cars returns a copy of the catalog in display order.
func Cars() []Car {
	out := make([]Car, len(cars))
	copy(out, cars)
	return out
}

// Profiles returns a copy of the behavioral profile table.
func Profiles() []VehicleProfile {
	out := make([]VehicleProfile, len(profiles))
	copy(out, profiles)
	return out
}

// GetCar returns the car with the given id.
func GetCar(id string) (Car, error) {
	for _, c := range cars {
		if c.ID == id {
			return c, nil
		}
	}
	return Car{}, ErrUnknownCar
}

// Lookup finds the profile for a car id. Callers rendering match results
// skip entries where ok is false.
func Lookup(carID string) (VehicleProfile, bool) {
	for _, p := range profiles {
		if p.CarID == carID {
			return p, true
		}
	}
	return VehicleProfile{}, false
}

// Featured returns the first featured car, if any.
func Featured() (Car, bool) {
	for _, c := range cars {
		if c.Featured {
			return c, true
		}
	}
	return Car{}, false
}

// Search applies a case-insensitive substring search over brand and model,
// plus exact type and brand dropdown filters.
func Search(all []Car, f Filter) []Car {
	query := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]Car, 0, len(all))
	for _, c := range all {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Model), query) &&
			!strings.Contains(strings.ToLower(c.Brand), query) {
			continue
		}
		if f.Type != "" && f.Type != "all" && string(c.Type) != f.Type {
			continue
		}
		if f.Brand != "" && f.Brand != "all" && !strings.EqualFold(c.Brand, f.Brand) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Brands lists the distinct brands in catalog order.
func Brands() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range cars {
		if !seen[c.Brand] {
			seen[c.Brand] = true
			out = append(out, c.Brand)
		}
	}
	return out
}
