package domain

// Shop is the owner-scoped aggregate root. Bookings, orders, products and
// services reference it by ShopID; the aggregation code never mutates it.
type Shop struct {
	ID          string `json:"id" firestore:"-"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description" firestore:"description"`
	OwnerID     string `json:"ownerId" firestore:"ownerId"`
	Category    string `json:"category" firestore:"category"`
	Location    string `json:"location" firestore:"location"`
	Address     string `json:"address" firestore:"address"`
	Phone       string `json:"phone" firestore:"phone"`
	Email       string `json:"email" firestore:"email"`
	ImageURL    string `json:"imageUrl" firestore:"imageUrl"`
	LogoURL     string `json:"logoUrl" firestore:"logoUrl"`

	Rating       float64 `json:"rating" firestore:"rating"`
	TotalReviews int     `json:"totalReviews" firestore:"totalReviews"`
	IsVerified   bool    `json:"isVerified" firestore:"isVerified"`
	IsActive     bool    `json:"isActive" firestore:"active"`

	// Daily operating window, "HH:mm" ("24:00" allowed for end of day).
	OpenTime24  string `json:"openTime24" firestore:"openTime24"`
	CloseTime24 string `json:"closeTime24" firestore:"closeTime24"`

	Tags       []string `json:"tags" firestore:"tags"`
	PriceRange string   `json:"priceRange" firestore:"priceRange"`

	CreatedAt int64 `json:"createdAt" firestore:"createdAt"` // epoch millis
	UpdatedAt int64 `json:"updatedAt" firestore:"updatedAt"`
}
