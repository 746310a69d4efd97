package graphql

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/doja-oual/portfolio-backend/internal/auth"
	"github.com/doja-oual/portfolio-backend/internal/models"
	repos "github.com/doja-oual/portfolio-backend/internal/repositories/mongo"
	"github.com/doja-oual/portfolio-backend/internal/utils"
)

// Resolver binds every API operation to a repository call, running the
// required guard first. Guards run before any repository access.
type Resolver struct {
	users       repos.UserRepository
	profiles    repos.ProfileRepository
	skills      repos.SkillRepository
	projects    repos.ProjectRepository
	experiences repos.ExperienceRepository
	tokens      *auth.TokenCodec
	log         *logrus.Logger
}

func NewResolver(
	users repos.UserRepository,
	profiles repos.ProfileRepository,
	skills repos.SkillRepository,
	projects repos.ProjectRepository,
	experiences repos.ExperienceRepository,
	tokens *auth.TokenCodec,
	log *logrus.Logger,
) *Resolver {
	return &Resolver{
		users:       users,
		profiles:    profiles,
		skills:      skills,
		projects:    projects,
		experiences: experiences,
		tokens:      tokens,
		log:         log,
	}
}

// Portfolio aggregates the whole public surface in one query.
type Portfolio struct {
	Profile     *models.Profile     `json:"profil"`
	Projects    []models.Project    `json:"projets"`
	Skills      []models.Skill      `json:"competences"`
	Experiences []models.Experience `json:"experiences"`
}

type AuthPayload struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// wrap surfaces only the safe message of an error to the API response
// and logs the full cause.
func (r *Resolver) wrap(name string, fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		out, err := fn(p)
		if err != nil {
			r.log.WithError(err).WithField("operation", name).Warn("resolver error")
			return nil, errors.New(utils.SafeMessage(err))
		}
		return out, nil
	}
}

func parseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, utils.E(utils.CodeInvalidArgument, "", "Identifiant invalide", err)
	}
	return id, nil
}

// notFoundAsNil lets nullable single-entity queries return null instead
// of an error when the id does not resolve.
func notFoundAsNil(v interface{}, err error) (interface{}, error) {
	if utils.IsCode(err, utils.CodeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// --- queries ---

func (r *Resolver) resolveHello(graphql.ResolveParams) (interface{}, error) {
	return "Hello World! GraphQL Server is running", nil
}

func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	ac := auth.FromContext(p.Context)
	if err := auth.RequireAuth(ac); err != nil {
		return nil, err
	}

	id, err := parseID(ac.Claims.UserID())
	if err != nil {
		return nil, err
	}
	return notFoundAsNil(r.users.FindByID(p.Context, id))
}

func (r *Resolver) resolvePortfolio(p graphql.ResolveParams) (interface{}, error) {
	profile, err := r.profiles.Find(p.Context)
	if err != nil {
		return nil, err
	}
	projects, err := r.projects.FindAll(p.Context, "")
	if err != nil {
		return nil, err
	}
	skills, err := r.skills.FindAll(p.Context, "")
	if err != nil {
		return nil, err
	}
	experiences, err := r.experiences.FindAll(p.Context)
	if err != nil {
		return nil, err
	}

	return &Portfolio{
		Profile:     profile,
		Projects:    projects,
		Skills:      skills,
		Experiences: experiences,
	}, nil
}

func (r *Resolver) resolveProfile(p graphql.ResolveParams) (interface{}, error) {
	profile, err := r.profiles.Find(p.Context)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return profile, nil
}

func (r *Resolver) resolveProjects(p graphql.ResolveParams) (interface{}, error) {
	status, _ := p.Args["statut"].(string)
	return r.projects.FindAll(p.Context, status)
}

func (r *Resolver) resolveProject(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"].(string))
	if err != nil {
		return nil, err
	}
	return notFoundAsNil(r.projects.FindByID(p.Context, id))
}

func (r *Resolver) resolveSkills(p graphql.ResolveParams) (interface{}, error) {
	category, _ := p.Args["categorie"].(string)
	return r.skills.FindAll(p.Context, category)
}

func (r *Resolver) resolveSkill(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"].(string))
	if err != nil {
		return nil, err
	}
	return notFoundAsNil(r.skills.FindByID(p.Context, id))
}

func (r *Resolver) resolveExperiences(p graphql.ResolveParams) (interface{}, error) {
	return r.experiences.FindAll(p.Context)
}

func (r *Resolver) resolveExperience(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"].(string))
	if err != nil {
		return nil, err
	}
	return notFoundAsNil(r.experiences.FindByID(p.Context, id))
}

// resolveSkillRefs expands a list of skill ids into full records for
// Projet.technologies and Experience.competences.
func (r *Resolver) resolveSkillRefs(p graphql.ResolveParams, ids []primitive.ObjectID) (interface{}, error) {
	return r.skills.FindByIDs(p.Context, ids)
}

// --- auth mutations (unguarded) ---

// resolveLogin returns the same generic error for an unknown email and
// a wrong password so accounts cannot be enumerated.
func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	const op = "Resolver.Login"

	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	user, err := r.users.FindByEmail(p.Context, email)
	if utils.IsCode(err, utils.CodeNotFound) {
		return nil, utils.E(utils.CodeUnauthorized, op, "Email ou mot de passe incorrect", err)
	}
	if err != nil {
		return nil, err
	}

	if err := utils.CheckPassword(user.Password, password); err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "Email ou mot de passe incorrect", err)
	}

	token, err := r.tokens.Issue(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthPayload{Token: token, User: user}, nil
}

func (r *Resolver) resolveRegister(p graphql.ResolveParams) (interface{}, error) {
	in := &models.RegisterInput{}
	in.Username, _ = p.Args["username"].(string)
	in.Email, _ = p.Args["email"].(string)
	in.Password, _ = p.Args["password"].(string)

	user, err := r.users.Create(p.Context, in, models.RoleUser)
	if err != nil {
		return nil, err
	}

	token, err := r.tokens.Issue(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthPayload{Token: token, User: user}, nil
}

// --- admin mutations ---

func (r *Resolver) requireAdmin(p graphql.ResolveParams) error {
	return auth.RequireAdmin(auth.FromContext(p.Context))
}

func (r *Resolver) resolveCreateProfile(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireAdmin(p); err != nil {
		return nil, err
	}
	in, err := decodeProfileInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	return r.profiles.Create(p.Context, in)
}

func (r *Resolver) resolveUpdateProfile(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireAdmin(p); err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"].(string))
	if err != nil {
		return nil, err
	}
	in, err := decodeProfileInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	return r.profiles.Update(p.Context, id, in)
}

func (r *Resolver) resolveDeleteProfile(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireAdmin(p); err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"].(string))
	if err != nil {
		return nil, err
	}
	if err := r.profiles.Delete(p.Context, id); err != nil {
		return nil, err
	}
	return true, nil
}

func (r *Resolver) resolveCreateSkill(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireAdmin(p); err != nil {
		return nil, err
	}
	in, err := decodeSkillInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	return r.skills.Create(p.Context, in)
}

func (r *Resolver) resolveUpdateSkill(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireAdmin(p); err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"].(string))
	if err != nil {
		return nil, err
	}
	in, err := decodeSkillInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	return r.skills.Update(p.Context, id, in)
}

func (r *Resolver) resolveDeleteSkill(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireAdmin(p); err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"].(string))
	if err != nil {
		return nil, err
	}
	if err := r.skills.Delete(p.Context, id); err != nil {
		return nil, err
	}
	return true, nil
}

func (r *Resolver) resolveCreateProject(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireAdmin(p); err != nil {
		return nil, err
	}
	in, err := decodeProjectInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	return r.projects.Create(p.Context, in)
}

func (r *Resolver) resolveUpdateProject(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireAdmin(p); err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"].(string))
	if err != nil {
		return nil, err
	}
	in, err := decodeProjectInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	return r.projects.Update(p.Context, id, in)
}

func (r *Resolver) resolveDeleteProject(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireAdmin(p); err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"].(string))
	if err != nil {
		return nil, err
	}
	if err := r.projects.Delete(p.Context, id); err != nil {
		return nil, err
	}
	return true, nil
}

func (r *Resolver) resolveCreateExperience(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireAdmin(p); err != nil {
		return nil, err
	}
	in, err := decodeExperienceInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	return r.experiences.Create(p.Context, in)
}

func (r *Resolver) resolveUpdateExperience(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireAdmin(p); err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"].(string))
	if err != nil {
		return nil, err
	}
	in, err := decodeExperienceInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	return r.experiences.Update(p.Context, id, in)
}

func (r *Resolver) resolveDeleteExperience(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireAdmin(p); err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"].(string))
	if err != nil {
		return nil, err
	}
	if err := r.experiences.Delete(p.Context, id); err != nil {
		return nil, err
	}
	return true, nil
}
