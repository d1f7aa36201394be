package holiday

// Holiday is a configured non-working calendar date, independent of the
// weekly-off rule. JSON tags define the persisted shape.
type Holiday struct {
	ID   string `json:"id"`
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
}
