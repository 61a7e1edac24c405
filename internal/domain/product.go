package domain

// Product is a physical item sold through a shop.
type Product struct {
	ID          string `json:"id" firestore:"-"`
	ShopID      string `json:"shopId" firestore:"shopId"`
	OwnerID     string `json:"ownerId" firestore:"ownerId"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description" firestore:"description"`
	ImageURL    string `json:"imageUrl" firestore:"imageUrl"`

	Price    float64 `json:"price" firestore:"price"`
	Currency string  `json:"currency" firestore:"currency"`
	Category string  `json:"category" firestore:"category"`

	InStock       bool `json:"inStock" firestore:"inStock"`
	StockQuantity int  `json:"stockQuantity" firestore:"stockQuantity"`
	UnitsSold     int  `json:"unitsSold" firestore:"unitsSold"`

	// ExpensePerUnit feeds the accounting overview's expense roll-up.
	ExpensePerUnit float64 `json:"expensePerUnit" firestore:"expensePerUnit"`

	IsActive  bool  `json:"isActive" firestore:"isActive"`
	CreatedAt int64 `json:"createdAt" firestore:"createdAt"` // epoch millis
	UpdatedAt int64 `json:"updatedAt" firestore:"updatedAt"`
}
