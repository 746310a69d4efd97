package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SocialLinks struct {
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub   string `bson:"github,omitempty" json:"github,omitempty"`
	Twitter  string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Website  string `bson:"website,omitempty" json:"website,omitempty"`
}

type Address struct {
	City    string `bson:"ville,omitempty" json:"ville,omitempty"`
	Country string `bson:"pays,omitempty" json:"pays,omitempty"`
}

// Profile is a singleton: at most one document lives in the collection
// and creation fails with a conflict when one already exists.
type Profile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LastName    string             `bson:"nom" json:"nom"`
	FirstName   string             `bson:"prenom" json:"prenom"`
	Title       string             `bson:"titre" json:"titre"`
	Bio         string             `bson:"bio" json:"bio"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"telephone,omitempty" json:"telephone,omitempty"`
	Photo       string             `bson:"photo,omitempty" json:"photo,omitempty"`
	CV          string             `bson:"cv,omitempty" json:"cv,omitempty"`
	SocialLinks *SocialLinks       `bson:"reseauxSociaux,omitempty" json:"reseauxSociaux,omitempty"`
	Address     *Address           `bson:"adresse,omitempty" json:"adresse,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SocialLinksInput struct {
	LinkedIn string `validate:"omitempty,url"`
	GitHub   string `validate:"omitempty,url"`
	Twitter  string `validate:"omitempty,url"`
	Website  string `validate:"omitempty,url"`
}

type AddressInput struct {
	City    string `validate:"omitempty,max=100"`
	Country string `validate:"omitempty,max=100"`
}

// ProfileInput optional fields are pointers: nil means the key was
// absent from the call and updates leave the stored value alone.
type ProfileInput struct {
	LastName    string            `validate:"required,max=50"`
	FirstName   string            `validate:"required,max=50"`
	Title       string            `validate:"required,max=100"`
	Bio         string            `validate:"required,max=2000"`
	Email       string            `validate:"required,email"`
	Phone       *string           `validate:"omitempty,max=30"`
	Photo       *string           `validate:"omitempty,url"`
	CV          *string           `validate:"omitempty,url"`
	SocialLinks *SocialLinksInput `validate:"omitempty"`
	Address     *AddressInput     `validate:"omitempty"`
}
