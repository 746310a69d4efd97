package graphql

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/doja-oual/portfolio-backend/internal/models"
	"github.com/doja-oual/portfolio-backend/internal/utils"
)

// In-memory repositories mirroring the store contracts: conflict on
// duplicates, not-found on missing ids, lowercased emails, fixed sort
// orders, and updates that leave fields absent from the input alone.

func derefStr(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

func derefInt(p *int) int {
	if p != nil {
		return *p
	}
	return 0
}

func derefBool(p *bool) bool {
	if p != nil {
		return *p
	}
	return false
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, utils.E(utils.CodeNotFound, "fakeUserRepo.FindByID", "Utilisateur non trouvé", nil)
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	email = strings.ToLower(email)
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, utils.E(utils.CodeNotFound, "fakeUserRepo.FindByEmail", "Utilisateur non trouvé", nil)
}

func (r *fakeUserRepo) Create(_ context.Context, in *models.RegisterInput, role models.UserRole) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	for _, u := range r.users {
		if u.Email == email || u.Username == in.Username {
			return nil, utils.E(utils.CodeConflict, "fakeUserRepo.Create", "Un utilisateur avec cet email ou ce nom d'utilisateur existe déjà", nil)
		}
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:        primitive.NewObjectID(),
		Username:  in.Username,
		Email:     email,
		Password:  hash,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.users[u.ID] = u

	cp := *u
	return &cp, nil
}

type fakeProfileRepo struct {
	profile *models.Profile
}

func (r *fakeProfileRepo) Find(context.Context) (*models.Profile, error) {
	if r.profile == nil {
		return nil, nil
	}
	cp := *r.profile
	return &cp, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, in *models.ProfileInput) (*models.Profile, error) {
	if r.profile != nil {
		return nil, utils.E(utils.CodeConflict, "fakeProfileRepo.Create", "Un profil existe déjà. Utilisez updateProfil pour le modifier.", nil)
	}
	now := time.Now().UTC()
	r.profile = &models.Profile{
		ID:        primitive.NewObjectID(),
		LastName:  in.LastName,
		FirstName: in.FirstName,
		Title:     in.Title,
		Bio:       in.Bio,
		Email:     strings.ToLower(in.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	cp := *r.profile
	return &cp, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, id primitive.ObjectID, in *models.ProfileInput) (*models.Profile, error) {
	if r.profile == nil || r.profile.ID != id {
		return nil, utils.E(utils.CodeNotFound, "fakeProfileRepo.Update", "Profil non trouvé", nil)
	}
	r.profile.LastName = in.LastName
	r.profile.FirstName = in.FirstName
	r.profile.Title = in.Title
	r.profile.Bio = in.Bio
	r.profile.Email = strings.ToLower(in.Email)
	r.profile.UpdatedAt = time.Now().UTC()
	cp := *r.profile
	return &cp, nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if r.profile == nil || r.profile.ID != id {
		return utils.E(utils.CodeNotFound, "fakeProfileRepo.Delete", "Profil non trouvé", nil)
	}
	r.profile = nil
	return nil
}

type fakeSkillRepo struct {
	skills map[primitive.ObjectID]*models.Skill
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[primitive.ObjectID]*models.Skill{}}
}

func (r *fakeSkillRepo) FindAll(_ context.Context, category string) ([]models.Skill, error) {
	out := []models.Skill{}
	for _, s := range r.skills {
		if category == "" || string(s.Category) == category {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *fakeSkillRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Skill, error) {
	if s, ok := r.skills[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, utils.E(utils.CodeNotFound, "fakeSkillRepo.FindByID", "Compétence non trouvée", nil)
}

func (r *fakeSkillRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Skill, error) {
	out := []models.Skill{}
	for _, id := range ids {
		if s, ok := r.skills[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSkillRepo) Create(_ context.Context, in *models.SkillInput) (*models.Skill, error) {
	for _, s := range r.skills {
		if s.Name == in.Name {
			return nil, utils.E(utils.CodeConflict, "fakeSkillRepo.Create", "Une compétence avec ce nom existe déjà", nil)
		}
	}
	now := time.Now().UTC()
	s := &models.Skill{
		ID:         primitive.NewObjectID(),
		Name:       in.Name,
		Level:      models.SkillLevel(in.Level),
		Category:   models.SkillCategory(in.Category),
		Percentage: in.Percentage,
		Icon:       derefStr(in.Icon),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.skills[s.ID] = s
	cp := *s
	return &cp, nil
}

func (r *fakeSkillRepo) Update(_ context.Context, id primitive.ObjectID, in *models.SkillInput) (*models.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return nil, utils.E(utils.CodeNotFound, "fakeSkillRepo.Update", "Compétence non trouvée", nil)
	}
	s.Name = in.Name
	s.Level = models.SkillLevel(in.Level)
	s.Category = models.SkillCategory(in.Category)
	if in.Percentage != nil {
		s.Percentage = in.Percentage
	}
	if in.Icon != nil {
		s.Icon = *in.Icon
	}
	s.UpdatedAt = time.Now().UTC()
	cp := *s
	return &cp, nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.skills[id]; !ok {
		return utils.E(utils.CodeNotFound, "fakeSkillRepo.Delete", "Compétence non trouvée", nil)
	}
	delete(r.skills, id)
	return nil
}

type fakeProjectRepo struct {
	projects map[primitive.ObjectID]*models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[primitive.ObjectID]*models.Project{}}
}

func (r *fakeProjectRepo) FindAll(_ context.Context, status string) ([]models.Project, error) {
	out := []models.Project{}
	for _, p := range r.projects {
		if status == "" || string(p.Status) == status {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out, nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Project, error) {
	if p, ok := r.projects[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, utils.E(utils.CodeNotFound, "fakeProjectRepo.FindByID", "Projet non trouvé", nil)
}

func (r *fakeProjectRepo) Create(_ context.Context, in *models.ProjectInput) (*models.Project, error) {
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
		ID:           primitive.NewObjectID(),
		Title:        in.Title,
		Description:  in.Description,
		Technologies: in.Technologies,
		Images:       images,
		Status:       status,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Order:        derefInt(in.Order),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.projects[p.ID] = p
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, id primitive.ObjectID, in *models.ProjectInput) (*models.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, utils.E(utils.CodeNotFound, "fakeProjectRepo.Update", "Projet non trouvé", nil)
	}
	p.Title = in.Title
	p.Description = in.Description
	p.Technologies = in.Technologies
	p.StartDate = in.StartDate
	if in.EndDate != nil {
		p.EndDate = in.EndDate
	}
	if in.Images != nil {
		p.Images = in.Images
	}
	if in.Order != nil {
		p.Order = *in.Order
	}
	if in.Status != nil {
		p.Status = models.ProjectStatus(*in.Status)
	}
	p.UpdatedAt = time.Now().UTC()
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.projects[id]; !ok {
		return utils.E(utils.CodeNotFound, "fakeProjectRepo.Delete", "Projet non trouvé", nil)
	}
	delete(r.projects, id)
	return nil
}

type fakeExperienceRepo struct {
	experiences map[primitive.ObjectID]*models.Experience
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{experiences: map[primitive.ObjectID]*models.Experience{}}
}

func (r *fakeExperienceRepo) FindAll(context.Context) ([]models.Experience, error) {
	out := []models.Experience{}
	for _, e := range r.experiences {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out, nil
}

func (r *fakeExperienceRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Experience, error) {
	if e, ok := r.experiences[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, utils.E(utils.CodeNotFound, "fakeExperienceRepo.FindByID", "Expérience non trouvée", nil)
}

func (r *fakeExperienceRepo) Create(_ context.Context, in *models.ExperienceInput) (*models.Experience, error) {
	now := time.Now().UTC()
	e := &models.Experience{
		ID:          primitive.NewObjectID(),
		Company:     in.Company,
		Position:    in.Position,
		Type:        models.ContractType(in.Type),
		Description: in.Description,
		Skills:      in.Skills,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Ongoing:     derefBool(in.Ongoing),
		Location:    derefStr(in.Location),
		Logo:        derefStr(in.Logo),
		Order:       derefInt(in.Order),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.experiences[e.ID] = e
	cp := *e
	return &cp, nil
}

func (r *fakeExperienceRepo) Update(_ context.Context, id primitive.ObjectID, in *models.ExperienceInput) (*models.Experience, error) {
	e, ok := r.experiences[id]
	if !ok {
		return nil, utils.E(utils.CodeNotFound, "fakeExperienceRepo.Update", "Expérience non trouvée", nil)
	}
	e.Company = in.Company
	e.Position = in.Position
	e.Type = models.ContractType(in.Type)
	e.Description = in.Description
	e.Skills = in.Skills
	e.StartDate = in.StartDate
	if in.EndDate != nil {
		e.EndDate = in.EndDate
	}
	if in.Ongoing != nil {
		e.Ongoing = *in.Ongoing
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Logo != nil {
		e.Logo = *in.Logo
	}
	if in.Order != nil {
		e.Order = *in.Order
	}
	e.UpdatedAt = time.Now().UTC()
	cp := *e
	return &cp, nil
}

func (r *fakeExperienceRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.experiences[id]; !ok {
		return utils.E(utils.CodeNotFound, "fakeExperienceRepo.Delete", "Expérience non trouvée", nil)
	}
	delete(r.experiences, id)
	return nil
}
