package reviews

import (
	"time"

	"github.com/google/uuid"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedUsers returns the community members known to the store.
func SeedUsers() []User {
	return []User{
		{ID: "user-1", Name: "Sarah Johnson", Email: "sarah.j@example.com", IsFriend: true},
		{ID: "user-2", Name: "Michael Chen", Email: "m.chen@example.com", IsFriend: true},
		{ID: "user-3", Name: "Emily Rodriguez", Email: "emily.r@example.com", IsFriend: false},
		{ID: "user-4", Name: "David Thompson", Email: "d.thompson@example.com", IsFriend: true},
		{ID: "user-5", Name: "Jessica Lee", Email: "jess.lee@example.com", IsFriend: false},
	}
}

// SeedReviews returns the built-in community reviews.
func SeedReviews() []*Review {
	return []*Review{
		{
			ID: uuid.MustParse("6d1f1a52-6c7e-4c8e-9a3b-0d6f4c1e2a01"), CarID: "1",
			UserID: "user-1", UserName: "Sarah Johnson", Rating: 5,
			Title:   "Perfect family sedan",
			Comment: "Smooth, quiet and easy on fuel. Two years in and it has needed nothing but oil changes.",
			Date:    day("2025-01-15"), Verified: true, Helpful: 24,
		},
		{
			ID: uuid.MustParse("6d1f1a52-6c7e-4c8e-9a3b-0d6f4c1e2a02"), CarID: "1",
			UserID: "user-2", UserName: "Michael Chen", Rating: 4,
			Title:   "Reliable daily driver",
			Comment: "Comfortable on the highway. The infotainment could be quicker but the safety suite is excellent.",
			Date:    day("2025-02-03"), Verified: true, Helpful: 12,
		},
		{
			ID: uuid.MustParse("6d1f1a52-6c7e-4c8e-9a3b-0d6f4c1e2a03"), CarID: "1",
			UserID: "user-3", UserName: "Emily Rodriguez", Rating: 3,
			Title:   "Good but not exciting",
			Comment: "Does everything well. I wish it had a little more power for merging.",
			Date:    day("2024-11-20"), Verified: false, Helpful: 5,
		},
		{
			ID: uuid.MustParse("6d1f1a52-6c7e-4c8e-9a3b-0d6f4c1e2a04"), CarID: "2",
			UserID: "user-4", UserName: "David Thompson", Rating: 5,
			Title:   "Takes everything we throw at it",
			Comment: "Camping gear, dogs and groceries all fit. AWD has been great in the snow.",
			Date:    day("2025-03-10"), Verified: true, Helpful: 31,
		},
		{
			ID: uuid.MustParse("6d1f1a52-6c7e-4c8e-9a3b-0d6f4c1e2a05"), CarID: "2",
			UserID: "user-5", UserName: "Jessica Lee", Rating: 4,
			Title:   "Great compact SUV",
			Comment: "Practical and efficient. Road noise is noticeable at highway speed.",
			Date:    day("2025-01-28"), Verified: true, Helpful: 9,
		},
		{
			ID: uuid.MustParse("6d1f1a52-6c7e-4c8e-9a3b-0d6f4c1e2a06"), CarID: "5",
			UserID: "user-1", UserName: "Sarah Johnson", Rating: 5,
			Title:   "Fuel stops are a rare event",
			Comment: "Over 55 mpg in mixed driving and the cabin is surprisingly quiet.",
			Date:    day("2024-12-05"), Verified: true, Helpful: 18,
		},
		{
			ID: uuid.MustParse("6d1f1a52-6c7e-4c8e-9a3b-0d6f4c1e2a07"), CarID: "8",
			UserID: "user-2", UserName: "Michael Chen", Rating: 5,
			Title:   "Pure driving joy",
			Comment: "Turn-in is sharp and the engine pulls hard everywhere. Not practical, and I don't care.",
			Date:    day("2025-04-02"), Verified: true, Helpful: 27,
		},
		{
			ID: uuid.MustParse("6d1f1a52-6c7e-4c8e-9a3b-0d6f4c1e2a08"), CarID: "8",
			UserID: "user-5", UserName: "Jessica Lee", Rating: 3,
			Title:   "Fun but firm",
			Comment: "Incredible on a back road, tiring on the commute. Trunk space is minimal.",
			Date:    day("2025-02-14"), Verified: false, Helpful: 7,
		},
		{
			ID: uuid.MustParse("6d1f1a52-6c7e-4c8e-9a3b-0d6f4c1e2a09"), CarID: "11",
			UserID: "user-4", UserName: "David Thompson", Rating: 4,
			Title:   "Minivan that doesn't feel like one",
			Comment: "Hybrid economy with room for seven. Sliding doors are a lifesaver with kids.",
			Date:    day("2024-10-18"), Verified: true, Helpful: 15,
		},
	}
}
