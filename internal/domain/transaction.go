package domain

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Transaction is an accounting line derived from orders and completed
// bookings. Expense amounts are negative.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"` // YYYY-MM-DD
	OrderID     string          `json:"orderId,omitempty"`
}

// AccountingOverview summarizes income, expenses and recent activity for all
// shops owned by one user.
type AccountingOverview struct {
	TotalIncome        float64       `json:"totalIncome"`
	TotalExpenses      float64       `json:"totalExpenses"`
	NetProfit          float64       `json:"netProfit"`
	RecentTransactions []Transaction `json:"recentTransactions"`
}
