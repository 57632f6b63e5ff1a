package reviews

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps reviews in process. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	reviews []*Review
	users   []User
	now     func() time.Time
}

// NewMemoryStore creates a store holding copies of the given reviews and
// users.
func NewMemoryStore(seed []*Review, users []User) *MemoryStore {
	s := &MemoryStore{
		users: append([]User(nil), users...),
		now:   time.Now,
	}
	for _, r := range seed {
		cp := *r
		s.reviews = append(s.reviews, &cp)
	}
	return s
}

// NewSeededStore creates a store with the built-in community reviews.
func NewSeededStore() *MemoryStore {
	return NewMemoryStore(SeedReviews(), SeedUsers())
}

func (s *MemoryStore) CreateReview(_ context.Context, r *Review) error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, r.Rating)
	}
	if strings.TrimSpace(r.CarID) == "" {
		return fmt.Errorf("%w: car_id is required", ErrInvalidReview)
	}
	if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Comment) == "" {
		return fmt.Errorf("%w: title and comment are required", ErrInvalidReview)
	}
	if r.UserID == "" {
		r.UserID = CurrentUserID
	}
	if r.UserName == "" {
		r.UserName = "You"
	}

	r.ID = uuid.New()
	r.Date = s.now().UTC().Truncate(24 * time.Hour)
	r.Helpful = 0

	cp := *r
	s.mu.Lock()
	s.reviews = append(s.reviews, &cp)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) GetReview(_ context.Context, id uuid.UUID) (*Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reviews {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListReviews(_ context.Context, f Filter) ([]*Review, error) {
	query := strings.ToLower(strings.TrimSpace(f.Search))

	s.mu.RLock()
	out := make([]*Review, 0)
	for _, r := range s.reviews {
		if f.CarID != "" && r.CarID != f.CarID {
			continue
		}
		if f.Rating != 0 && r.Rating != f.Rating {
			continue
		}
		if query != "" && !matches(r, query) {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	s.mu.RUnlock()

	switch f.Sort {
	case SortRecent, "":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortHelpful:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Helpful > out[j].Helpful })
	default:
		return nil, fmt.Errorf("unknown sort order %q", f.Sort)
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *MemoryStore) MarkHelpful(_ context.Context, id uuid.UUID) (*Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reviews {
		if r.ID == id {
			r.Helpful++
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Summary(_ context.Context, carID string) (*Summary, error) {
	sum := &Summary{
		CarID:        carID,
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int
	for _, r := range s.reviews {
		if r.CarID != carID {
			continue
		}
		sum.Count++
		sum.Distribution[r.Rating]++
		total += r.Rating
	}
	if sum.Count > 0 {
		sum.Average = float64(total) / float64(sum.Count)
	}
	return sum, nil
}

// CompareWithFriends collects the reviews of carID written by userID's
// friends. An empty friendID or "all" includes every friend.
func (s *MemoryStore) CompareWithFriends(_ context.Context, carID, userID, friendID string) (*FriendComparison, error) {
	if userID == "" {
		userID = CurrentUserID
	}

	friends := make(map[string]bool)
	cmp := &FriendComparison{CarID: carID, FriendReviews: make([]*Review, 0)}
	for _, u := range s.users {
		if u.IsFriend && u.ID != userID {
			friends[u.ID] = true
			cmp.Friends = append(cmp.Friends, u)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var total, count int
	for _, r := range s.reviews {
		if r.CarID != carID {
			continue
		}
		if r.UserID == userID && cmp.YourReview == nil {
			cp := *r
			cmp.YourReview = &cp
			continue
		}
		if !friends[r.UserID] {
			continue
		}
		total += r.Rating
		count++
		if friendID == "" || friendID == "all" || friendID == r.UserID {
			cp := *r
			cmp.FriendReviews = append(cmp.FriendReviews, &cp)
		}
	}
	if count > 0 {
		cmp.AverageRating = float64(total) / float64(count)
	}
	return cmp, nil
}

func matches(r *Review, query string) bool {
	return strings.Contains(strings.ToLower(r.Title), query) ||
		strings.Contains(strings.ToLower(r.Comment), query) ||
		strings.Contains(strings.ToLower(r.UserName), query)
}
