package domain

import "time"

// Donor is the giving profile attached to a donateur or parrain account.
// Contact details live here rather than on the account so the donation team
// can manage them without touching the user record; one profile per account.
type Donor struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address   string    `json:"address,omitempty" bson:"address,omitempty"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
