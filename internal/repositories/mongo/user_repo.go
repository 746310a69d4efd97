package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doja-oual/portfolio-backend/internal/models"
	"github.com/doja-oual/portfolio-backend/internal/utils"
)

type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, in *models.RegisterInput, role models.UserRole) (*models.User, error)
}

type userRepo struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepository {
	return &userRepo{col: db.Collection("users")}
}

func (r *userRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	const op = "UserRepo.FindByID"

	var u models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.E(utils.CodeNotFound, op, "Utilisateur non trouvé", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	return &u, nil
}

// FindByEmail matches on the lowercased email; emails are stored
// lowercase.
func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "UserRepo.FindByEmail"

	var u models.User
	err := r.col.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.E(utils.CodeNotFound, op, "Utilisateur non trouvé", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, in *models.RegisterInput, role models.UserRole) (*models.User, error) {
	const op = "UserRepo.Create"

	if err := validateInput(op, in); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := r.col.CountDocuments(ctx, bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"username": in.Username},
	}})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing user", err)
	}
	if count > 0 {
		return nil, utils.E(utils.CodeConflict, op, "Un utilisateur avec cet email ou ce nom d'utilisateur existe déjà", nil)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	now := time.Now().UTC()
	u := &models.User{
		Username:  in.Username,
		Email:     email,
		Password:  hash,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		// unique index backstop for concurrent registrations
		return nil, utils.E(utils.CodeConflict, op, "Un utilisateur avec cet email ou ce nom d'utilisateur existe déjà", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}
