package models

import "time"

// ReservationRequest is what the notifier needs to tell the shop about a request
type ReservationRequest struct {
	CustomerName    string
	CustomerContact string
	ModelName       string
	CollectionName  string
	RequestedAt     time.Time
}

// Reservation statuses
const (
	ReservationNotified     = "notified"
	ReservationNotifyFailed = "notify_failed"
)

// Reservation represents a stored reservation request in the database
type Reservation struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerContact string    `json:"customerContact"`
	ModelName       string    `json:"modelName"`
	CollectionName  string    `json:"collectionName"`
	Status          string    `json:"status"` // notified, notify_failed
	NotifyError     string    `json:"notifyError,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ReservationResult is returned by a successful submission
type ReservationResult struct {
	Request  ReservationRequest
	Recorded bool   // true when the request was stored
	ID       string // stored reservation id, empty when not recorded
}
