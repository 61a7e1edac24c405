package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"   // awaiting shop owner response
	BookingStatusAccepted  BookingStatus = "ACCEPTED"  // shop owner accepted
	BookingStatusDenied    BookingStatus = "DENIED"    // shop owner denied
	BookingStatusModified  BookingStatus = "MODIFIED"  // shop owner proposed a different time/date
	BookingStatusCompleted BookingStatus = "COMPLETED" // service completed
	BookingStatusCancelled BookingStatus = "CANCELLED" // cancelled by customer or shop
)

// Booking is a customer's request to receive a service at a given date and
// time, tracked through the owner approval workflow.
type Booking struct {
	ID              string        `json:"id" firestore:"-"`
	CustomerID      string        `json:"customerId" firestore:"customerId"`
	ShopID          string        `json:"shopId" firestore:"shopId"`
	ShopOwnerID     string        `json:"shopOwnerId" firestore:"shopOwnerId"`
	ServiceID       string        `json:"serviceId" firestore:"serviceId"`
	ServiceName     string        `json:"serviceName" firestore:"serviceName"`
	ShopName        string        `json:"shopName" firestore:"shopName"`
	CustomerName    string        `json:"customerName" firestore:"customerName"`
	CustomerEmail   string        `json:"customerEmail" firestore:"customerEmail"`
	RequestedDate   string        `json:"requestedDate" firestore:"requestedDate"` // YYYY-MM-DD
	RequestedTime   string        `json:"requestedTime" firestore:"requestedTime"` // HH:mm
	Status          BookingStatus `json:"status" firestore:"status"`
	Notes           string        `json:"notes" firestore:"notes"`
	ResponseMessage string        `json:"responseMessage" firestore:"responseMessage"`
	// AgreedPrice is captured when the owner accepts. Zero means not set;
	// revenue then falls back to the legacy service-name price table.
	AgreedPrice float64 `json:"agreedPrice,omitempty" firestore:"agreedPrice"`
	CreatedAt   int64   `json:"createdAt" firestore:"createdAt"` // epoch millis
	UpdatedAt   int64   `json:"updatedAt" firestore:"updatedAt"`
}

// Terminal reports whether no further status transitions are allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusDenied || s == BookingStatusCompleted || s == BookingStatusCancelled
}

// bookingTransitions encodes the allowed status moves. MODIFIED reopens
// negotiation from PENDING or ACCEPTED but never out of a terminal state.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusAccepted, BookingStatusDenied, BookingStatusModified, BookingStatusCancelled},
	BookingStatusAccepted: {BookingStatusCompleted, BookingStatusCancelled, BookingStatusModified},
	BookingStatusModified: {BookingStatusAccepted, BookingStatusDenied, BookingStatusCancelled},
}

// CanTransition reports whether a booking may move from its current status
// to the target status.
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}
