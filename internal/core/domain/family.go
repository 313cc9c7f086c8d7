package domain

import "time"

// FamilyType distinguishes adoption requests from foster-care offers.
type FamilyType string

const (
	FamilyAdoption   FamilyType = "adoption"
	FamilyFosterCare FamilyType = "famille_accueil"
)

// FamilyStatus is the review state of a family application.
type FamilyStatus string

const (
	FamilyPending  FamilyStatus = "en_attente"
	FamilyApproved FamilyStatus = "approuve"
	FamilyRejected FamilyStatus = "rejete"
)

// SexPreference is the applicant's stated preference, if any.
type SexPreference string

const (
	PreferMale   SexPreference = "M"
	PreferFemale SexPreference = "F"
	PreferAny    SexPreference = "indifferent"
)

// Family is an adoption or foster-care application reviewed by the social team.
type Family struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	Name            string        `json:"name" bson:"name"`
	ContactName     string        `json:"contact_name" bson:"contact_name"`
	Email           string        `json:"email" bson:"email"`
	Phone           string        `json:"phone" bson:"phone"`
	Address         string        `json:"address" bson:"address"`
	Type            FamilyType    `json:"type" bson:"type"`
	Status          FamilyStatus  `json:"status" bson:"status"`
	ChildrenWanted  int           `json:"children_wanted" bson:"children_wanted"`
	AgeMin          int           `json:"age_min" bson:"age_min"`
	AgeMax          int           `json:"age_max" bson:"age_max"`
	SexPreference   SexPreference `json:"sex_preference,omitempty" bson:"sex_preference,omitempty"`
	Motivation      string        `json:"motivation" bson:"motivation"`
	FamilySituation string        `json:"family_situation,omitempty" bson:"family_situation,omitempty"`
	MonthlyIncome   float64       `json:"monthly_income,omitempty" bson:"monthly_income,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`
}
