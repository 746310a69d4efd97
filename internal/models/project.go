package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectStatus string

const (
	StatusInProgress ProjectStatus = "EN_COURS"
	StatusDone       ProjectStatus = "TERMINE"
	StatusArchived   ProjectStatus = "ARCHIVE"
)

// Project stores skill references as raw ids; the API layer expands
// them into full Competence records.
type Project struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title           string               `bson:"titre" json:"titre"`
	Description     string               `bson:"description" json:"description"`
	LongDescription string               `bson:"descriptionLongue,omitempty" json:"descriptionLongue,omitempty"`
	Technologies    []primitive.ObjectID `bson:"technologies" json:"technologies"`
	Images          []string             `bson:"images" json:"images"`
	GitHubLink      string               `bson:"lienGithub,omitempty" json:"lienGithub,omitempty"`
	DemoLink        string               `bson:"lienDemo,omitempty" json:"lienDemo,omitempty"`
	Status          ProjectStatus        `bson:"statut" json:"statut"`
	StartDate       time.Time            `bson:"dateDebut" json:"dateDebut"`
	EndDate         *time.Time           `bson:"dateFin,omitempty" json:"dateFin,omitempty"`
	Order           int                  `bson:"ordre" json:"ordre"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ProjectInput optional fields are pointers (and a nil Images slice):
// nil means the key was absent and updates leave the stored value
// alone. In particular an update without statut keeps the current
// status instead of falling back to EN_COURS.
type ProjectInput struct {
	Title           string               `validate:"required,max=200"`
	Description     string               `validate:"required,max=500"`
	LongDescription *string              `validate:"omitempty,max=5000"`
	Technologies    []primitive.ObjectID `validate:"required"`
	Images          []string             `validate:"omitempty,dive,url"`
	GitHubLink      *string              `validate:"omitempty,url"`
	DemoLink        *string              `validate:"omitempty,url"`
	Status          *string              `validate:"omitempty,oneof=EN_COURS TERMINE ARCHIVE"`
	StartDate       time.Time            `validate:"required"`
	EndDate         *time.Time           `validate:"omitempty"`
	Order           *int                 `validate:"omitempty,min=0"`
}
