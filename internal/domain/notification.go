package domain

type Notification struct {
	ID         string            `json:"id" firestore:"-"`
	UserID     string            `json:"userId" firestore:"userId"`
	Title      string            `json:"title" firestore:"title"`
	Message    string            `json:"message" firestore:"message"`
	Attributes map[string]string `json:"attributes" firestore:"attributes"`
	Read       bool              `json:"read" firestore:"read"`
	CreatedAt  int64             `json:"createdAt" firestore:"createdAt"` // epoch millis
}
