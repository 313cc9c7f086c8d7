package domain

import "time"

// DonationType distinguishes one-off gifts from monthly pledges.
type DonationType string

const (
	DonationOneOff  DonationType = "ponctuel"
	DonationMonthly DonationType = "mensuel"
)

// DonationStatus is the settlement state of a donation.
type DonationStatus string

const (
	DonationPending   DonationStatus = "en_attente"
	DonationConfirmed DonationStatus = "confirme"
	DonationCancelled DonationStatus = "annule"
)

// Donation records a gift from a donor.
type Donation struct {
	ID         string         `json:"id" bson:"_id,omitempty"`
	DonorName  string         `json:"donor_name" bson:"donor_name"`
	DonorEmail string         `json:"donor_email" bson:"donor_email"`
	Amount     float64        `json:"amount" bson:"amount"`
	Type       DonationType   `json:"type" bson:"type"`
	Status     DonationStatus `json:"status" bson:"status"`
	Date       string         `json:"date" bson:"date"`
	Message    string         `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
}
