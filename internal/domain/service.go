package domain

// Service is a bookable offering listed by a shop. BasePrice is the
// advertised price; bookings snapshot an agreed price at acceptance time.
type Service struct {
	ID          string `json:"id" firestore:"-"`
	ShopID      string `json:"shopId" firestore:"shopId"`
	OwnerID     string `json:"ownerId" firestore:"ownerId"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description" firestore:"description"`
	ImageURL    string `json:"imageUrl" firestore:"imageUrl"`

	BasePrice float64 `json:"basePrice" firestore:"basePrice"`
	Currency  string  `json:"currency" firestore:"currency"`
	Category  string  `json:"category" firestore:"category"`

	EstimatedDuration int  `json:"estimatedDuration" firestore:"estimatedDuration"` // minutes
	IsBookable        bool `json:"isBookable" firestore:"isBookable"`

	// ExpensePerUnit feeds the accounting overview's expense roll-up.
	ExpensePerUnit float64 `json:"expensePerUnit" firestore:"expensePerUnit"`

	IsActive  bool  `json:"isActive" firestore:"isActive"`
	CreatedAt int64 `json:"createdAt" firestore:"createdAt"` // epoch millis
	UpdatedAt int64 `json:"updatedAt" firestore:"updatedAt"`
}
