package hermes

import "time"

const (
	SubjectAll             = "showroom.>"
	SubjectMatchCompleted  = "showroom.match.completed"
	SubjectFinanceCompared = "showroom.finance.compared"

	StreamName   = "SHOWROOM_EVENTS"
	StreamMaxAge = 30 * 24 * time.Hour
)

// Review lifecycle subjects
func SubjectReviewCreated(reviewID string) string { return "showroom.review." + reviewID + ".created" }
func SubjectReviewHelpful(reviewID string) string { return "showroom.review." + reviewID + ".helpful" }
