package quiz

type Category string

const (
	CategoryDriving     Category = "driving"
	CategorySensory     Category = "sensory"
	CategoryTech        Category = "tech"
	CategoryMaintenance Category = "maintenance"
)

type DrivingStyle string

const (
	DrivingCautious DrivingStyle = "cautious"
	DrivingBalanced DrivingStyle = "balanced"
	DrivingSpirited DrivingStyle = "spirited"
)

type SensoryPreference string

const (
	SensoryQuiet    SensoryPreference = "quiet"
	SensoryBalanced SensoryPreference = "balanced"
	SensorySporty   SensoryPreference = "sporty"
)

type TechComfort string

const (
	TechMinimal     TechComfort = "minimal"
	TechConnected   TechComfort = "connected"
	TechCuttingEdge TechComfort = "cuttingEdge"
)

type MaintenanceApproach string

const (
	MaintenanceHandsOff   MaintenanceApproach = "handsOff"
	MaintenanceBalanced   MaintenanceApproach = "balanced"
	MaintenanceEnthusiast MaintenanceApproach = "enthusiast"
)

// Per-dimension vote weights. Field order is the declaration order used to
// break ties between equal nonzero tallies.

type DrivingWeights struct {
	Cautious float64 `json:"cautious,omitempty"`
	Balanced float64 `json:"balanced,omitempty"`
	Spirited float64 `json:"spirited,omitempty"`
}

type SensoryWeights struct {
	Quiet    float64 `json:"quiet,omitempty"`
	Balanced float64 `json:"balanced,omitempty"`
	Sporty   float64 `json:"sporty,omitempty"`
}

type TechWeights struct {
	Minimal     float64 `json:"minimal,omitempty"`
	Connected   float64 `json:"connected,omitempty"`
	CuttingEdge float64 `json:"cuttingEdge,omitempty"`
}

type MaintenanceWeights struct {
	HandsOff   float64 `json:"handsOff,omitempty"`
	Balanced   float64 `json:"balanced,omitempty"`
	Enthusiast float64 `json:"enthusiast,omitempty"`
}

// OptionWeights is the sparse vote an answer casts. Zero fields cast nothing.
type OptionWeights struct {
	DrivingStyle DrivingWeights     `json:"drivingStyle"`
	Sensory      SensoryWeights     `json:"sensory"`
	Tech         TechWeights        `json:"tech"`
	Maintenance  MaintenanceWeights `json:"maintenance"`
}

type Option struct {
	Label   string        `json:"label"`
	Value   string        `json:"value"`
	Weights OptionWeights `json:"weights"`
}

type Question struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
	Options     []Option `json:"options"`
}

// Selections maps question id to the chosen option value.
type Selections map[string]string

// Priorities are the three 0-10 sliders shown after the quiz.
type Priorities struct {
	Safety      float64 `json:"safety"`
	Performance float64 `json:"performance"`
	Cargo       float64 `json:"cargo"`
}

// Responses is the derived persona consumed by the matcher.
type Responses struct {
	Driving     DrivingStyle        `json:"driving"`
	Sensory     SensoryPreference   `json:"sensory"`
	Tech        TechComfort         `json:"tech"`
	Maintenance MaintenanceApproach `json:"maintenance"`
	Priorities  *Priorities         `json:"priorities,omitempty"`
	Budget      float64             `json:"budget,omitempty"`
}

// Tally is the raw vote count per dimension before the winner is picked.
type Tally struct {
	Driving     DrivingWeights     `json:"driving"`
	Sensory     SensoryWeights     `json:"sensory"`
	Tech        TechWeights        `json:"tech"`
	Maintenance MaintenanceWeights `json:"maintenance"`
}

// Find returns the option with the given value.
func (q Question) Find(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}
