package domain

// BookingStats is the fixed-shape booking summary for a shop or an owner.
// DENIED and MODIFIED bookings count toward the total only.
type BookingStats struct {
	TotalBookings     int `json:"totalBookings"`
	PendingBookings   int `json:"pendingBookings"`
	ConfirmedBookings int `json:"confirmedBookings"` // status ACCEPTED
	CompletedBookings int `json:"completedBookings"`
	CancelledBookings int `json:"cancelledBookings"`
	TodayBookings     int `json:"todayBookings"` // created since local midnight
}

// RevenueSummary holds gross revenue across overlapping time windows.
// The windows are independent sums; no ordering relation holds between them.
type RevenueSummary struct {
	TodayRevenue      float64 `json:"todayRevenue"`
	WeekRevenue       float64 `json:"weekRevenue"`  // since most recent Monday 00:00
	MonthRevenue      float64 `json:"monthRevenue"` // since first of month 00:00
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalTransactions int     `json:"totalTransactions"`
}

// ProductSales is one row of the top-sellers ranking.
type ProductSales struct {
	Name      string  `json:"name"`
	UnitsSold int     `json:"unitsSold"`
	Revenue   float64 `json:"revenue"`
}

// MonthRevenue is one bucket of the trailing monthly trend.
type MonthRevenue struct {
	Month   string  `json:"month"` // short name, e.g. "Jun"
	Revenue float64 `json:"revenue"`
}

// WeekdayCounts maps the current Monday-based week to per-day booking counts.
// All seven keys are always present.
type WeekdayCounts map[string]int

// AnalyticsSnapshot is the persisted nightly roll-up for one shop.
type AnalyticsSnapshot struct {
	ID       string `json:"id" firestore:"-"`
	ShopID   string `json:"shopId" firestore:"shopId"`
	OwnerID  string `json:"ownerId" firestore:"ownerId"`
	Period   string `json:"period" firestore:"period"` // DAILY
	Date     string `json:"date" firestore:"date"`     // YYYY-MM-DD

	Revenue  RevenueSummary `json:"revenue" firestore:"revenue"`
	Bookings BookingStats   `json:"bookings" firestore:"bookings"`

	CreatedAt int64 `json:"createdAt" firestore:"createdAt"` // epoch millis
}
