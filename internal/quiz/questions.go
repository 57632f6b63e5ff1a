package quiz

// Questions returns the behavioral quiz in display order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

var questions = []Question{
	{
		ID:       "driving-pace",
		Title:    "How would you describe your typical driving pace?",
		Category: CategoryDriving,
		Options: []Option{
			{Label: "I take it easy and prioritize smoothness", Value: "calm", Weights: OptionWeights{DrivingStyle: DrivingWeights{Cautious: 2}}},
			{Label: "I go with the flow and adapt to traffic", Value: "adaptive", Weights: OptionWeights{DrivingStyle: DrivingWeights{Balanced: 2}}},
			{Label: "I enjoy quick acceleration and confident passing", Value: "assertive", Weights: OptionWeights{DrivingStyle: DrivingWeights{Spirited: 3}}},
		},
	},
	{
		ID:       "driving-confidence",
		Title:    "How do you feel about taking tight curves or highway merges?",
		Category: CategoryDriving,
		Options: []Option{
			{Label: "I prefer a calmer vehicle that feels planted and predictable", Value: "steady", Weights: OptionWeights{DrivingStyle: DrivingWeights{Cautious: 2}}},
			{Label: "I like confidence and responsiveness without being too aggressive", Value: "responsive", Weights: OptionWeights{DrivingStyle: DrivingWeights{Balanced: 2}}},
			{Label: "Give me sharp handling and power on tap", Value: "dynamic", Weights: OptionWeights{DrivingStyle: DrivingWeights{Spirited: 3}}},
		},
	},
	{
		ID:       "sensory-cabin",
		Title:    "What kind of cabin experience do you prefer?",
		Category: CategorySensory,
		Options: []Option{
			{Label: "Whisper-quiet with minimal vibration", Value: "quiet", Weights: OptionWeights{Sensory: SensoryWeights{Quiet: 3}}},
			{Label: "A thoughtful balance of calm and engaging", Value: "balanced", Weights: OptionWeights{Sensory: SensoryWeights{Balanced: 2}}},
			{Label: "I love hearing the engine and feeling the road", Value: "engaging", Weights: OptionWeights{Sensory: SensoryWeights{Sporty: 3}}},
		},
	},
	{
		ID:       "sensory-seating",
		Title:    "How sensitive are you to seating comfort during long drives?",
		Category: CategorySensory,
		Options: []Option{
			{Label: "Extremely, I need plush, supportive seating", Value: "comfort", Weights: OptionWeights{Sensory: SensoryWeights{Quiet: 1.5, Balanced: 1}}},
			{Label: "I appreciate comfort but can compromise a bit", Value: "practical", Weights: OptionWeights{Sensory: SensoryWeights{Balanced: 1.5}}},
			{Label: "Seat firmness doesn't bother me much", Value: "firm", Weights: OptionWeights{Sensory: SensoryWeights{Sporty: 1.5}}},
		},
	},
	{
		ID:       "tech-attitude",
		Title:    "How do you feel about in-car technology?",
		Category: CategoryTech,
		Options: []Option{
			{Label: "Keep it simple, CarPlay/Android Auto is enough", Value: "basic-tech", Weights: OptionWeights{Tech: TechWeights{Minimal: 3}}},
			{Label: "I enjoy smart features and modern conveniences", Value: "connected-tech", Weights: OptionWeights{Tech: TechWeights{Connected: 3}}},
			{Label: "I want cutting-edge tech and driver assistance", Value: "advanced-tech", Weights: OptionWeights{Tech: TechWeights{CuttingEdge: 3}}},
		},
	},
	{
		ID:       "tech-learning",
		Title:    "How much time are you willing to spend learning new vehicle tech?",
		Category: CategoryTech,
		Options: []Option{
			{Label: "Very little, I prefer intuitive controls", Value: "intuitive", Weights: OptionWeights{Tech: TechWeights{Minimal: 2}}},
			{Label: "Some, I'll learn features that add value", Value: "moderate", Weights: OptionWeights{Tech: TechWeights{Connected: 2}}},
			{Label: "As much as needed, I love exploring tech", Value: "deep-dive", Weights: OptionWeights{Tech: TechWeights{CuttingEdge: 2}}},
		},
	},
	{
		ID:       "maintenance-attitude",
		Title:    "What kind of ownership experience do you prefer?",
		Category: CategoryMaintenance,
		Options: []Option{
			{Label: "Set it and forget it, I want minimal upkeep", Value: "minimal", Weights: OptionWeights{Maintenance: MaintenanceWeights{HandsOff: 3}}},
			{Label: "I'll follow the schedule but don't want complicated work", Value: "scheduled", Weights: OptionWeights{Maintenance: MaintenanceWeights{Balanced: 3}}},
			{Label: "I enjoy tinkering or customizing my vehicle", Value: "hands-on", Weights: OptionWeights{Maintenance: MaintenanceWeights{Enthusiast: 3}}},
		},
	},
	{
		ID:       "maintenance-diy",
		Title:    "How comfortable are you with DIY maintenance?",
		Category: CategoryMaintenance,
		Options: []Option{
			{Label: "I prefer to leave everything to the dealer", Value: "dealer", Weights: OptionWeights{Maintenance: MaintenanceWeights{HandsOff: 2}}},
			{Label: "I can do basics like wipers and fluids", Value: "basic", Weights: OptionWeights{Maintenance: MaintenanceWeights{Balanced: 2}}},
			{Label: "I handle most jobs in my garage", Value: "advanced", Weights: OptionWeights{Maintenance: MaintenanceWeights{Enthusiast: 2}}},
		},
	},
}

// DisplayName returns the persona badge text for a derived label.
func (d DrivingStyle) DisplayName() string {
	switch d {
	case DrivingCautious:
		return "Cautious"
	case DrivingSpirited:
		return "Spirited"
	default:
		return "Balanced"
	}
}

func (s SensoryPreference) DisplayName() string {
	switch s {
	case SensoryQuiet:
		return "Serene cabin"
	case SensorySporty:
		return "Sporty feedback"
	default:
		return "Balanced feel"
	}
}

func (t TechComfort) DisplayName() string {
	switch t {
	case TechMinimal:
		return "Essential tech"
	case TechCuttingEdge:
		return "Cutting-edge tech"
	default:
		return "Connected features"
	}
}

func (m MaintenanceApproach) DisplayName() string {
	switch m {
	case MaintenanceHandsOff:
		return "Low-effort ownership"
	case MaintenanceEnthusiast:
		return "Hands-on maintainer"
	default:
		return "Routine maintenance"
	}
}
