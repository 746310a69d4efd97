package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doja-oual/portfolio-backend/internal/models"
	"github.com/doja-oual/portfolio-backend/internal/utils"
)

type ProfileRepository interface {
	// Find returns (nil, nil) when no profile exists.
	Find(ctx context.Context) (*models.Profile, error)
	Create(ctx context.Context, in *models.ProfileInput) (*models.Profile, error)
	Update(ctx context.Context, id primitive.ObjectID, in *models.ProfileInput) (*models.Profile, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type profileRepo struct {
	col *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) ProfileRepository {
	return &profileRepo{col: db.Collection("profils")}
}

func (r *profileRepo) Find(ctx context.Context) (*models.Profile, error) {
	const op = "ProfileRepo.Find"

	var p models.Profile
	err := r.col.FindOne(ctx, bson.M{}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}
	return &p, nil
}

// Create enforces the singleton: at most one profile document.
func (r *profileRepo) Create(ctx context.Context, in *models.ProfileInput) (*models.Profile, error) {
	const op = "ProfileRepo.Create"

	if err := validateInput(op, in); err != nil {
		return nil, err
	}

	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing profile", err)
	}
	if count > 0 {
		return nil, utils.E(utils.CodeConflict, op, "Un profil existe déjà. Utilisez updateProfil pour le modifier.", nil)
	}

	now := time.Now().UTC()
	p := profileFromInput(in)
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create profile", err)
	}

	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (r *profileRepo) Update(ctx context.Context, id primitive.ObjectID, in *models.ProfileInput) (*models.Profile, error) {
	const op = "ProfileRepo.Update"

	if err := validateInput(op, in); err != nil {
		return nil, err
	}

	// only fields present in the input are written
	set := bson.M{
		"nom":       in.LastName,
		"prenom":    in.FirstName,
		"titre":     in.Title,
		"bio":       in.Bio,
		"email":     strings.ToLower(strings.TrimSpace(in.Email)),
		"updatedAt": time.Now().UTC(),
	}
	if in.Phone != nil {
		set["telephone"] = *in.Phone
	}
	if in.Photo != nil {
		set["photo"] = *in.Photo
	}
	if in.CV != nil {
		set["cv"] = *in.CV
	}
	if in.SocialLinks != nil {
		set["reseauxSociaux"] = socialLinksFromInput(in.SocialLinks)
	}
	if in.Address != nil {
		set["adresse"] = addressFromInput(in.Address)
	}
	update := bson.M{"$set": set}

	var updated models.Profile
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.E(utils.CodeNotFound, op, "Profil non trouvé", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update profile", err)
	}
	return &updated, nil
}

func (r *profileRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	const op = "ProfileRepo.Delete"

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete profile", err)
	}
	if res.DeletedCount == 0 {
		return utils.E(utils.CodeNotFound, op, "Profil non trouvé", nil)
	}
	return nil
}

func profileFromInput(in *models.ProfileInput) *models.Profile {
	p := &models.Profile{
		LastName:  in.LastName,
		FirstName: in.FirstName,
		Title:     in.Title,
		Bio:       in.Bio,
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strVal(in.Phone),
		Photo:     strVal(in.Photo),
		CV:        strVal(in.CV),
	}
	if in.SocialLinks != nil {
		p.SocialLinks = socialLinksFromInput(in.SocialLinks)
	}
	if in.Address != nil {
		p.Address = addressFromInput(in.Address)
	}
	return p
}

func socialLinksFromInput(in *models.SocialLinksInput) *models.SocialLinks {
	return &models.SocialLinks{
		LinkedIn: in.LinkedIn,
		GitHub:   in.GitHub,
		Twitter:  in.Twitter,
		Website:  in.Website,
	}
}

func addressFromInput(in *models.AddressInput) *models.Address {
	return &models.Address{
		City:    in.City,
		Country: in.Country,
	}
}
