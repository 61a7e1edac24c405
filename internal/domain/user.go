package domain

type UserType string

const (
	UserTypeCustomer      UserType = "CUSTOMER"
	UserTypeBusinessOwner UserType = "BUSINESS_OWNER"
)

type User struct {
	ID           string   `json:"id" firestore:"-"`
	Email        string   `json:"email" firestore:"email"`
	Username     string   `json:"username" firestore:"username"`
	DisplayName  string   `json:"displayName" firestore:"displayName"`
	PhotoURL     string   `json:"photoUrl" firestore:"photoUrl"`
	UserType     UserType `json:"userType" firestore:"userType"`
	PasswordHash string   `json:"-" firestore:"passwordHash"`
	Verified     bool     `json:"verified" firestore:"verified"`
	Active       bool     `json:"active" firestore:"active"`
	CreatedAt    int64    `json:"createdAt" firestore:"createdAt"` // epoch millis
	LastLoginAt  int64    `json:"lastLoginAt" firestore:"lastLoginAt"`
}
