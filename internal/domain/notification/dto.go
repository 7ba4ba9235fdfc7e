package notification

// CreateNotificationRequest is an internal envelope other services queue
// for delivery. It never arrives over HTTP.
type CreateNotificationRequest struct {
	RecipientID string
	Kind        Kind
	Title       string
	Body        string
	Link        *string
}

// ListResponse carries one page of notifications plus the unread total.
type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
	Total         int            `json:"total"`
}
