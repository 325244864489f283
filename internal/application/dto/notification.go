package dto

// PushPayload is the wire format delivered to a subscription endpoint.
// The service worker reads exactly these three fields.
type PushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// ReminderRunReport summarizes one reminder pass.
type ReminderRunReport struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}
