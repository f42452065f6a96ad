package port

// Sender delivers a rendered digest to its recipients.
type Sender interface {
	Send(subject, htmlBody string) error
}
