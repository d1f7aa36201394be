package broadcast

// Message is an admin-authored announcement, append-only and read by all
// users. JSON tags define the persisted shape.
type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
