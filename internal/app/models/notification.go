package models

// Notification is an ephemeral event record created by upload, report and
// feedback actions. Notifications are never expired or deleted; they are
// only listed and counted. There is no read-marking operation.
type Notification struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"` // ISO date YYYY-MM-DD
	Read bool   `json:"read"`
}
