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

type SkillRepository interface {
	// FindAll returns skills sorted by (categorie asc, nom asc),
	// optionally filtered to one category.
	FindAll(ctx context.Context, category string) ([]models.Skill, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Skill, error)
	// FindByIDs resolves skill references from projects and
	// experiences; unknown ids are silently absent from the result.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Skill, error)
	Create(ctx context.Context, in *models.SkillInput) (*models.Skill, error)
	Update(ctx context.Context, id primitive.ObjectID, in *models.SkillInput) (*models.Skill, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type skillRepo struct {
	col *mongo.Collection
}

func NewSkillRepo(db *mongo.Database) SkillRepository {
	return &skillRepo{col: db.Collection("competences")}
}

var skillSort = bson.D{{Key: "categorie", Value: 1}, {Key: "nom", Value: 1}}

func (r *skillRepo) FindAll(ctx context.Context, category string) ([]models.Skill, error) {
	const op = "SkillRepo.FindAll"

	filter := bson.M{}
	if category != "" {
		filter["categorie"] = category
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(skillSort))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list skills", err)
	}

	skills := []models.Skill{}
	if err := cur.All(ctx, &skills); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode skills", err)
	}
	return skills, nil
}

func (r *skillRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Skill, error) {
	const op = "SkillRepo.FindByID"

	var s models.Skill
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.E(utils.CodeNotFound, op, "Compétence non trouvée", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load skill", err)
	}
	return &s, nil
}

func (r *skillRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Skill, error) {
	const op = "SkillRepo.FindByIDs"

	if len(ids) == 0 {
		return []models.Skill{}, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load skills", err)
	}

	fetched := []models.Skill{}
	if err := cur.All(ctx, &fetched); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode skills", err)
	}

	// keep the reference order of the ids
	byID := make(map[primitive.ObjectID]models.Skill, len(fetched))
	for _, s := range fetched {
		byID[s.ID] = s
	}
	skills := make([]models.Skill, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			skills = append(skills, s)
		}
	}
	return skills, nil
}

func (r *skillRepo) Create(ctx context.Context, in *models.SkillInput) (*models.Skill, error) {
	const op = "SkillRepo.Create"

	if err := validateInput(op, in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	s := &models.Skill{
		Name:       in.Name,
		Level:      models.SkillLevel(in.Level),
		Category:   models.SkillCategory(in.Category),
		Percentage: in.Percentage,
		Icon:       strVal(in.Icon),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := r.col.InsertOne(ctx, s)
	if mongo.IsDuplicateKeyError(err) {
		return nil, utils.E(utils.CodeConflict, op, "Une compétence avec ce nom existe déjà", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create skill", err)
	}

	s.ID = res.InsertedID.(primitive.ObjectID)
	return s, nil
}

func (r *skillRepo) Update(ctx context.Context, id primitive.ObjectID, in *models.SkillInput) (*models.Skill, error) {
	const op = "SkillRepo.Update"

	if err := validateInput(op, in); err != nil {
		return nil, err
	}

	// only fields present in the input are written
	set := bson.M{
		"nom":       in.Name,
		"niveau":    in.Level,
		"categorie": in.Category,
		"updatedAt": time.Now().UTC(),
	}
	if in.Percentage != nil {
		set["pourcentage"] = *in.Percentage
	}
	if in.Icon != nil {
		set["icone"] = *in.Icon
	}
	update := bson.M{"$set": set}

	var updated models.Skill
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.E(utils.CodeNotFound, op, "Compétence non trouvée", err)
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, utils.E(utils.CodeConflict, op, "Une compétence avec ce nom existe déjà", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update skill", err)
	}
	return &updated, nil
}

// Delete removes the skill only. Projects and experiences keep any
// dangling references to it.
func (r *skillRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	const op = "SkillRepo.Delete"

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete skill", err)
	}
	if res.DeletedCount == 0 {
		return utils.E(utils.CodeNotFound, op, "Compétence non trouvée", nil)
	}
	return nil
}
