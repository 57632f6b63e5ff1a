package scoring

import "github.com/MikeSquared-Agency/Showroom/internal/quiz"

// Category weight tables. Each row is one persona's attribute preference.

var DrivingTable = map[quiz.DrivingStyle]AttributeWeights{
	quiz.DrivingCautious: {Power: 0.08, Safety: 0.26, Efficiency: 0.20, Comfort: 0.14, Tech: 0.10, Quietness: 0.14, MaintenanceEase: 0.20, Cargo: 0.08},
	quiz.DrivingBalanced: {Power: 0.16, Safety: 0.20, Efficiency: 0.18, Comfort: 0.16, Tech: 0.14, Quietness: 0.10, MaintenanceEase: 0.18, Cargo: 0.12},
	quiz.DrivingSpirited: {Power: 0.36, Safety: 0.14, Efficiency: 0.05, Comfort: 0.08, Tech: 0.15, Quietness: 0.04, MaintenanceEase: 0.05, Cargo: 0.13},
}

var SensoryTable = map[quiz.SensoryPreference]AttributeWeights{
	quiz.SensoryQuiet:    {Power: 0.06, Safety: 0.20, Efficiency: 0.18, Comfort: 0.22, Tech: 0.10, Quietness: 0.24, MaintenanceEase: 0.18, Cargo: 0.12},
	quiz.SensoryBalanced: {Power: 0.15, Safety: 0.20, Efficiency: 0.20, Comfort: 0.16, Tech: 0.15, Quietness: 0.10, MaintenanceEase: 0.14, Cargo: 0.10},
	quiz.SensorySporty:   {Power: 0.32, Safety: 0.14, Efficiency: 0.05, Comfort: 0.08, Tech: 0.15, Quietness: 0.04, MaintenanceEase: 0.04, Cargo: 0.18},
}

var TechTable = map[quiz.TechComfort]AttributeWeights{
	quiz.TechMinimal:     {Power: 0.10, Safety: 0.22, Efficiency: 0.20, Comfort: 0.18, Tech: 0.05, Quietness: 0.15, MaintenanceEase: 0.20, Cargo: 0.10},
	quiz.TechConnected:   {Power: 0.16, Safety: 0.20, Efficiency: 0.18, Comfort: 0.16, Tech: 0.18, Quietness: 0.10, MaintenanceEase: 0.18, Cargo: 0.14},
	quiz.TechCuttingEdge: {Power: 0.22, Safety: 0.14, Efficiency: 0.10, Comfort: 0.12, Tech: 0.30, Quietness: 0.05, MaintenanceEase: 0.05, Cargo: 0.12},
}

var MaintenanceTable = map[quiz.MaintenanceApproach]AttributeWeights{
	quiz.MaintenanceHandsOff:   {Power: 0.10, Safety: 0.22, Efficiency: 0.20, Comfort: 0.14, Tech: 0.10, Quietness: 0.10, MaintenanceEase: 0.34, Cargo: 0.10},
	quiz.MaintenanceBalanced:   {Power: 0.16, Safety: 0.20, Efficiency: 0.18, Comfort: 0.16, Tech: 0.10, Quietness: 0.08, MaintenanceEase: 0.20, Cargo: 0.12},
	quiz.MaintenanceEnthusiast: {Power: 0.26, Safety: 0.14, Efficiency: 0.10, Comfort: 0.08, Tech: 0.16, Quietness: 0.04, MaintenanceEase: 0.18, Cargo: 0.14},
}
