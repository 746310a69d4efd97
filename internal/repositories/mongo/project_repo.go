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

type ProjectRepository interface {
	// FindAll returns projects sorted by (ordre asc, dateDebut desc),
	// optionally filtered to one status.
	FindAll(ctx context.Context, status string) ([]models.Project, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Create(ctx context.Context, in *models.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, in *models.ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type projectRepo struct {
	col *mongo.Collection
}

func NewProjectRepo(db *mongo.Database) ProjectRepository {
	return &projectRepo{col: db.Collection("projets")}
}

var projectSort = bson.D{{Key: "ordre", Value: 1}, {Key: "dateDebut", Value: -1}}

func (r *projectRepo) FindAll(ctx context.Context, status string) ([]models.Project, error) {
	const op = "ProjectRepo.FindAll"

	filter := bson.M{}
	if status != "" {
		filter["statut"] = status
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(projectSort))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list projects", err)
	}

	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode projects", err)
	}
	return projects, nil
}

func (r *projectRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	const op = "ProjectRepo.FindByID"

	var p models.Project
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.E(utils.CodeNotFound, op, "Projet non trouvé", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load project", err)
	}
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, in *models.ProjectInput) (*models.Project, error) {
	const op = "ProjectRepo.Create"

	if err := validateInput(op, in); err != nil {
		return nil, err
	}
	if err := validateDates(op, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	status := models.StatusInProgress
	if in.Status != nil {
		status = models.ProjectStatus(*in.Status)
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now().UTC()
	p := &models.Project{
		Title:           in.Title,
		Description:     in.Description,
		LongDescription: strVal(in.LongDescription),
		Technologies:    in.Technologies,
		Images:          images,
		GitHubLink:      strVal(in.GitHubLink),
		DemoLink:        strVal(in.DemoLink),
		Status:          status,
		StartDate:       in.StartDate.UTC(),
		EndDate:         in.EndDate,
		Order:           intVal(in.Order),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create project", err)
	}

	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (r *projectRepo) Update(ctx context.Context, id primitive.ObjectID, in *models.ProjectInput) (*models.Project, error) {
	const op = "ProjectRepo.Update"

	if err := validateInput(op, in); err != nil {
		return nil, err
	}
	if err := validateDates(op, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	// Only fields present in the input are written; an update without
	// statut keeps an ARCHIVE project archived.
	set := bson.M{
		"titre":        in.Title,
		"description":  in.Description,
		"technologies": in.Technologies,
		"dateDebut":    in.StartDate.UTC(),
		"updatedAt":    time.Now().UTC(),
	}
	if in.LongDescription != nil {
		set["descriptionLongue"] = *in.LongDescription
	}
	if in.Images != nil {
		set["images"] = in.Images
	}
	if in.GitHubLink != nil {
		set["lienGithub"] = *in.GitHubLink
	}
	if in.DemoLink != nil {
		set["lienDemo"] = *in.DemoLink
	}
	if in.Status != nil {
		set["statut"] = models.ProjectStatus(*in.Status)
	}
	if in.EndDate != nil {
		set["dateFin"] = *in.EndDate
	}
	if in.Order != nil {
		set["ordre"] = *in.Order
	}
	update := bson.M{"$set": set}

	var updated models.Project
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.E(utils.CodeNotFound, op, "Projet non trouvé", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update project", err)
	}
	return &updated, nil
}

func (r *projectRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	const op = "ProjectRepo.Delete"

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete project", err)
	}
	if res.DeletedCount == 0 {
		return utils.E(utils.CodeNotFound, op, "Projet non trouvé", nil)
	}
	return nil
}
