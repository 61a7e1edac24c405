package domain

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// OrderItem is a single product line on an order.
type OrderItem struct {
	ProductID string  `json:"productId" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	SKU       string  `json:"sku" firestore:"sku"`
	Price     float64 `json:"price" firestore:"price"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
}

// Order is immutable once created except for status and tracking updates.
type Order struct {
	ID          string      `json:"id" firestore:"-"`
	OrderNumber string      `json:"orderNumber" firestore:"orderNumber"`
	CustomerID  string      `json:"customerId" firestore:"customerId"`
	ShopID      string      `json:"shopId" firestore:"shopId"`
	OwnerID     string      `json:"ownerId" firestore:"ownerId"`
	Items       []OrderItem `json:"items" firestore:"items"`

	Subtotal float64 `json:"subtotal" firestore:"subtotal"`
	Tax      float64 `json:"tax" firestore:"tax"`
	Discount float64 `json:"discount" firestore:"discount"`
	Total    float64 `json:"total" firestore:"total"`
	Currency string  `json:"currency" firestore:"currency"`

	Status        OrderStatus   `json:"status" firestore:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus" firestore:"paymentStatus"`

	TrackingNumber string `json:"trackingNumber" firestore:"trackingNumber"`
	Carrier        string `json:"carrier" firestore:"carrier"`

	CustomerNotes string `json:"customerNotes" firestore:"customerNotes"`

	CreatedAt int64 `json:"createdAt" firestore:"createdAt"` // epoch millis
	UpdatedAt int64 `json:"updatedAt" firestore:"updatedAt"`
}
