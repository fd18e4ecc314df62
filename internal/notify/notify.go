// Package notify delivers booking confirmations to applicants and alerts
// to staff. Delivery is best-effort: callers log failures and move on, a
// booking never depends on a notification going out.
package notify

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Notifier interface {
	Send(msg Message) error
}
