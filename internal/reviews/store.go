package reviews

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("review not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrInvalidReview = errors.New("invalid review")
)

// CurrentUserID identifies the shopper when no user id is supplied.
const CurrentUserID = "current-user"

type SortOrder string

const (
	SortRecent  SortOrder = "recent"
	SortRating  SortOrder = "rating"
	SortHelpful SortOrder = "helpful"
)

type Review struct {
	ID         uuid.UUID `json:"id"`
	CarID      string    `json:"car_id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar,omitempty"`
	Rating     int       `json:"rating"`
	Title      string    `json:"title"`
	Comment    string    `json:"comment"`
	Date       time.Time `json:"date"`
	Verified   bool      `json:"verified"`
	Helpful    int       `json:"helpful"`
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	Email    string `json:"email"`
	IsFriend bool   `json:"is_friend"`
}

// Filter narrows List. Zero values match everything.
type Filter struct {
	CarID  string
	Search string
	Rating int
	Sort   SortOrder
	Limit  int
}

// Summary aggregates the ratings for one vehicle. Distribution is keyed by
// star count 1-5.
type Summary struct {
	CarID        string      `json:"car_id"`
	Count        int         `json:"count"`
	Average      float64     `json:"average"`
	Distribution map[int]int `json:"distribution"`
}

// FriendComparison sets a user's own review beside their friends' reviews of
// the same vehicle.
type FriendComparison struct {
	CarID         string    `json:"car_id"`
	YourReview    *Review   `json:"your_review,omitempty"`
	FriendReviews []*Review `json:"friend_reviews"`
	Friends       []User    `json:"friends"`
	AverageRating float64   `json:"average_rating"`
}

type Store interface {
	CreateReview(ctx context.Context, r *Review) error
	GetReview(ctx context.Context, id uuid.UUID) (*Review, error)
	ListReviews(ctx context.Context, filter Filter) ([]*Review, error)
	MarkHelpful(ctx context.Context, id uuid.UUID) (*Review, error)
	Summary(ctx context.Context, carID string) (*Summary, error)
	CompareWithFriends(ctx context.Context, carID, userID, friendID string) (*FriendComparison, error)
}
