package domain

import "time"

// ChildStatus is the placement state of a child.
type ChildStatus string

const (
	ChildPresent    ChildStatus = "present"
	ChildAdopted    ChildStatus = "adopte"
	ChildFosterCare ChildStatus = "famille_accueil"
	ChildSponsored  ChildStatus = "parraine"
)

// Sex is the declared sex of a child.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Child is a child's record, including the medical fields maintained by the
// medical staff.
type Child struct {
	ID              string      `json:"id" bson:"_id,omitempty"`
	FirstName       string      `json:"first_name" bson:"first_name"`
	LastName        string      `json:"last_name" bson:"last_name"`
	BirthDate       string      `json:"birth_date" bson:"birth_date"`
	Age             int         `json:"age" bson:"age"`
	Sex             Sex         `json:"sex" bson:"sex"`
	Photo           string      `json:"photo,omitempty" bson:"photo,omitempty"`
	Status          ChildStatus `json:"status" bson:"status"`
	ArrivalDate     string      `json:"arrival_date" bson:"arrival_date"`
	MedicalHistory  string      `json:"medical_history,omitempty" bson:"medical_history,omitempty"`
	Allergies       string      `json:"allergies,omitempty" bson:"allergies,omitempty"`
	Medications     string      `json:"medications,omitempty" bson:"medications,omitempty"`
	MedicalNotes    string      `json:"medical_notes,omitempty" bson:"medical_notes,omitempty"`
	ReferringDoctor string      `json:"referring_doctor,omitempty" bson:"referring_doctor,omitempty"`
	CreatedBy       string      `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" bson:"updated_at"`
}

// PublicChild is the reduced view exposed without authentication on the
// sponsorship page. No surname, no medical data.
type PublicChild struct {
	ID        string      `json:"id"`
	FirstName string      `json:"first_name"`
	Age       int         `json:"age"`
	Sex       Sex         `json:"sex"`
	Photo     string      `json:"photo,omitempty"`
	Status    ChildStatus `json:"status"`
}

// Public returns the unauthenticated view of the child.
func (c *Child) Public() PublicChild {
	return PublicChild{
		ID:        c.ID,
		FirstName: c.FirstName,
		Age:       c.Age,
		Sex:       c.Sex,
		Photo:     c.Photo,
		Status:    c.Status,
	}
}
