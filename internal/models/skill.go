package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "DEBUTANT"
	LevelIntermediate SkillLevel = "INTERMEDIAIRE"
	LevelAdvanced     SkillLevel = "AVANCE"
	LevelExpert       SkillLevel = "EXPERT"
)

type SkillCategory string

const (
	CategoryFrontend SkillCategory = "FRONTEND"
	CategoryBackend  SkillCategory = "BACKEND"
	CategoryDatabase SkillCategory = "DATABASE"
	CategoryDevOps   SkillCategory = "DEVOPS"
	CategoryOther    SkillCategory = "AUTRE"
)

// Skill (compétence) is referenced by id from projects and experiences.
// Deleting one does not purge dangling references.
type Skill struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"nom" json:"nom"`
	Level      SkillLevel         `bson:"niveau" json:"niveau"`
	Category   SkillCategory      `bson:"categorie" json:"categorie"`
	Percentage *int               `bson:"pourcentage,omitempty" json:"pourcentage,omitempty"`
	Icon       string             `bson:"icone,omitempty" json:"icone,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SkillInput optional fields are pointers: nil means the key was
// absent and updates leave the stored value alone.
type SkillInput struct {
	Name       string  `validate:"required,max=100"`
	Level      string  `validate:"required,oneof=DEBUTANT INTERMEDIAIRE AVANCE EXPERT"`
	Category   string  `validate:"required,oneof=FRONTEND BACKEND DATABASE DEVOPS AUTRE"`
	Percentage *int    `validate:"omitempty,min=0,max=100"`
	Icon       *string `validate:"omitempty,max=300"`
}
