package ports

import "context"

// NotificationKind labels what triggered a notification.
type NotificationKind string

const (
	NotifyRegistrationApproved NotificationKind = "registration_approved"
	NotifyRegistrationRejected NotificationKind = "registration_rejected"
	NotifyDonationReceipt      NotificationKind = "donation_receipt"
)

// Notification is a message addressed to a single recipient.
type Notification struct {
	Kind      NotificationKind
	Recipient string
	Subject   string
	Body      string
}

// Notifier delivers a single notification.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// NotificationDispatcher enqueues notifications for asynchronous delivery.
type NotificationDispatcher interface {
	Enqueue(n Notification)
}
