package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContractType string

const (
	ContractPermanent      ContractType = "CDI"
	ContractFixedTerm      ContractType = "CDD"
	ContractFreelance      ContractType = "FREELANCE"
	ContractInternship     ContractType = "STAGE"
	ContractApprenticeship ContractType = "ALTERNANCE"
)

type Experience struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Company     string               `bson:"entreprise" json:"entreprise"`
	Position    string               `bson:"poste" json:"poste"`
	Type        ContractType         `bson:"type" json:"type"`
	Description string               `bson:"description" json:"description"`
	Skills      []primitive.ObjectID `bson:"competences" json:"competences"`
	StartDate   time.Time            `bson:"dateDebut" json:"dateDebut"`
	EndDate     *time.Time           `bson:"dateFin,omitempty" json:"dateFin,omitempty"`
	Ongoing     bool                 `bson:"enCours" json:"enCours"`
	Location    string               `bson:"lieu,omitempty" json:"lieu,omitempty"`
	Logo        string               `bson:"logo,omitempty" json:"logo,omitempty"`
	Order       int                  `bson:"ordre" json:"ordre"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ExperienceInput optional fields are pointers: nil means the key was
// absent and updates leave the stored value alone.
type ExperienceInput struct {
	Company     string               `validate:"required,max=200"`
	Position    string               `validate:"required,max=200"`
	Type        string               `validate:"required,oneof=CDI CDD FREELANCE STAGE ALTERNANCE"`
	Description string               `validate:"required,max=2000"`
	Skills      []primitive.ObjectID `validate:"required"`
	StartDate   time.Time            `validate:"required"`
	EndDate     *time.Time           `validate:"omitempty"`
	Ongoing     *bool                `validate:"omitempty"`
	Location    *string              `validate:"omitempty,max=200"`
	Logo        *string              `validate:"omitempty,max=300"`
	Order       *int                 `validate:"omitempty,min=0"`
}
