package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doja-oual/portfolio-backend/internal/models"
	"github.com/doja-oual/portfolio-backend/internal/utils"
)

type ExperienceRepository interface {
	// FindAll returns experiences sorted by (ordre asc, dateDebut desc).
	FindAll(ctx context.Context) ([]models.Experience, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error)
	Create(ctx context.Context, in *models.ExperienceInput) (*models.Experience, error)
	Update(ctx context.Context, id primitive.ObjectID, in *models.ExperienceInput) (*models.Experience, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type experienceRepo struct {
	col *mongo.Collection
}

func NewExperienceRepo(db *mongo.Database) ExperienceRepository {
	return &experienceRepo{col: db.Collection("experiences")}
}

var experienceSort = bson.D{{Key: "ordre", Value: 1}, {Key: "dateDebut", Value: -1}}

func (r *experienceRepo) FindAll(ctx context.Context) ([]models.Experience, error) {
	const op = "ExperienceRepo.FindAll"

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(experienceSort))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list experiences", err)
	}

	experiences := []models.Experience{}
	if err := cur.All(ctx, &experiences); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode experiences", err)
	}
	return experiences, nil
}

func (r *experienceRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error) {
	const op = "ExperienceRepo.FindByID"

	var e models.Experience
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.E(utils.CodeNotFound, op, "Expérience non trouvée", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load experience", err)
	}
	return &e, nil
}

func (r *experienceRepo) Create(ctx context.Context, in *models.ExperienceInput) (*models.Experience, error) {
	const op = "ExperienceRepo.Create"

	if err := validateInput(op, in); err != nil {
		return nil, err
	}
	if err := validateDates(op, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	e := &models.Experience{
		Company:     in.Company,
		Position:    in.Position,
		Type:        models.ContractType(in.Type),
		Description: in.Description,
		Skills:      in.Skills,
		StartDate:   in.StartDate.UTC(),
		EndDate:     in.EndDate,
		Ongoing:     boolVal(in.Ongoing),
		Location:    strVal(in.Location),
		Logo:        strVal(in.Logo),
		Order:       intVal(in.Order),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create experience", err)
	}

	e.ID = res.InsertedID.(primitive.ObjectID)
	return e, nil
}

func (r *experienceRepo) Update(ctx context.Context, id primitive.ObjectID, in *models.ExperienceInput) (*models.Experience, error) {
	const op = "ExperienceRepo.Update"

	if err := validateInput(op, in); err != nil {
		return nil, err
	}
	if err := validateDates(op, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	// only fields present in the input are written
	set := bson.M{
		"entreprise":  in.Company,
		"poste":       in.Position,
		"type":        in.Type,
		"description": in.Description,
		"competences": in.Skills,
		"dateDebut":   in.StartDate.UTC(),
		"updatedAt":   time.Now().UTC(),
	}
	if in.EndDate != nil {
		set["dateFin"] = *in.EndDate
	}
	if in.Ongoing != nil {
		set["enCours"] = *in.Ongoing
	}
	if in.Location != nil {
		set["lieu"] = *in.Location
	}
	if in.Logo != nil {
		set["logo"] = *in.Logo
	}
	if in.Order != nil {
		set["ordre"] = *in.Order
	}
	update := bson.M{"$set": set}

	var updated models.Experience
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.E(utils.CodeNotFound, op, "Expérience non trouvée", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update experience", err)
	}
	return &updated, nil
}

func (r *experienceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	const op = "ExperienceRepo.Delete"

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete experience", err)
	}
	if res.DeletedCount == 0 {
		return utils.E(utils.CodeNotFound, op, "Expérience non trouvée", nil)
	}
	return nil
}
