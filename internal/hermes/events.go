package hermes

import "time"

type MatchCompletedEvent struct {
	RequestID   string    `json:"request_id"`
	Driving     string    `json:"driving"`
	Sensory     string    `json:"sensory"`
	Tech        string    `json:"tech"`
	Maintenance string    `json:"maintenance"`
	Budget      float64   `json:"budget,omitempty"`
	TopCarID    string    `json:"top_car_id,omitempty"`
	TopScore    int       `json:"top_score,omitempty"`
	Results     int       `json:"results"`
	Timestamp   time.Time `json:"timestamp"`
}

type FinanceComparedEvent struct {
	RequestID   string    `json:"request_id"`
	CarID       string    `json:"car_id,omitempty"`
	Price       float64   `json:"price"`
	Best        string    `json:"best"`
	BestTotal   float64   `json:"best_total_cost"`
	BestMonthly float64   `json:"best_monthly_payment"`
	Timestamp   time.Time `json:"timestamp"`
}

type ReviewCreatedEvent struct {
	ReviewID string `json:"review_id"`
	CarID    string `json:"car_id"`
	UserID   string `json:"user_id"`
	Rating   int    `json:"rating"`
}

type ReviewHelpfulEvent struct {
	ReviewID string `json:"review_id"`
	CarID    string `json:"car_id"`
	Helpful  int    `json:"helpful"`
}
