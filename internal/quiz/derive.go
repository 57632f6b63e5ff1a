package quiz

// Default persona labels used when a dimension received no votes.
const (
	DefaultDriving     = DrivingBalanced
	DefaultSensory     = SensoryBalanced
	DefaultTech        = TechConnected
	DefaultMaintenance = MaintenanceBalanced
)

// Count adds up the votes cast by every answered question. Unanswered
// questions and unknown option values are skipped.
func Count(questions []Question, selections Selections) Tally {
	var t Tally
	for _, q := range questions {
		picked := selections[q.ID]
		if picked == "" {
			continue
		}
		opt, ok := q.Find(picked)
		if !ok {
			continue
		}
		w := opt.Weights

		t.Driving.Cautious += w.DrivingStyle.Cautious
		t.Driving.Balanced += w.DrivingStyle.Balanced
		t.Driving.Spirited += w.DrivingStyle.Spirited

		t.Sensory.Quiet += w.Sensory.Quiet
		t.Sensory.Balanced += w.Sensory.Balanced
		t.Sensory.Sporty += w.Sensory.Sporty

		t.Tech.Minimal += w.Tech.Minimal
		t.Tech.Connected += w.Tech.Connected
		t.Tech.CuttingEdge += w.Tech.CuttingEdge

		t.Maintenance.HandsOff += w.Maintenance.HandsOff
		t.Maintenance.Balanced += w.Maintenance.Balanced
		t.Maintenance.Enthusiast += w.Maintenance.Enthusiast
	}
	return t
}

// Derive turns a completed quiz into one persona label per dimension.
// Priorities and budget are carried through untouched.
func Derive(questions []Question, selections Selections, priorities *Priorities, budget float64) Responses {
	return DeriveFromTally(Count(questions, selections), priorities, budget)
}

// DeriveFromTally picks the winning label in each dimension.
func DeriveFromTally(t Tally, priorities *Priorities, budget float64) Responses {
	return Responses{
		Driving: pick(DefaultDriving,
			vote[DrivingStyle]{DrivingCautious, t.Driving.Cautious},
			vote[DrivingStyle]{DrivingBalanced, t.Driving.Balanced},
			vote[DrivingStyle]{DrivingSpirited, t.Driving.Spirited},
		),
		Sensory: pick(DefaultSensory,
			vote[SensoryPreference]{SensoryQuiet, t.Sensory.Quiet},
			vote[SensoryPreference]{SensoryBalanced, t.Sensory.Balanced},
			vote[SensoryPreference]{SensorySporty, t.Sensory.Sporty},
		),
		Tech: pick(DefaultTech,
			vote[TechComfort]{TechMinimal, t.Tech.Minimal},
			vote[TechComfort]{TechConnected, t.Tech.Connected},
			vote[TechComfort]{TechCuttingEdge, t.Tech.CuttingEdge},
		),
		Maintenance: pick(DefaultMaintenance,
			vote[MaintenanceApproach]{MaintenanceHandsOff, t.Maintenance.HandsOff},
			vote[MaintenanceApproach]{MaintenanceBalanced, t.Maintenance.Balanced},
			vote[MaintenanceApproach]{MaintenanceEnthusiast, t.Maintenance.Enthusiast},
		),
		Priorities: priorities,
		Budget:     budget,
	}
}

type vote[T ~string] struct {
	label T
	score float64
}

// pick returns the fallback when nothing was voted for in the dimension;
// otherwise the strictly highest score wins and earlier labels win ties.
func pick[T ~string](fallback T, votes ...vote[T]) T {
	cast := false
	for _, v := range votes {
		if v.score != 0 {
			cast = true
			break
		}
	}
	if !cast {
		return fallback
	}

	best := votes[0]
	for _, v := range votes[1:] {
		if v.score > best.score {
			best = v
		}
	}
	return best.label
}

// Unanswered lists question ids with no valid selection, in question order.
func Unanswered(questions []Question, selections Selections) []string {
	var missing []string
	for _, q := range questions {
		if _, ok := q.Find(selections[q.ID]); !ok {
			missing = append(missing, q.ID)
		}
	}
	return missing
}
