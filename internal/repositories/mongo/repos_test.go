package mongo

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doja-oual/portfolio-backend/config"
	"github.com/doja-oual/portfolio-backend/internal/models"
	"github.com/doja-oual/portfolio-backend/internal/utils"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

// setupTestDB starts a containerized MongoDB, connects, and creates the
// indexes the repositories rely on. The container is torn down with the
// test.
func setupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("27017/tcp"),
				wait.ForLog("Waiting for connections"),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start mongo container")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(connectCtx, nil))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	})

	const dbName = "portfolio_test"
	require.NoError(t, config.EnsureIndexes(client, dbName))

	return client.Database(dbName)
}

func TestUserRepoCreateAndUniqueness(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepo(db)
	ctx := context.Background()

	created, err := users.Create(ctx, &models.RegisterInput{
		Username: "alice",
		Email:    "Alice@Example.COM",
		Password: "p4ssword",
	}, models.RoleUser)
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "alice@example.com", created.Email, "email is stored lowercase")
	assert.Equal(t, models.RoleUser, created.Role)
	assert.NotEqual(t, "p4ssword", created.Password, "password is stored hashed")
	assert.NoError(t, utils.CheckPassword(created.Password, "p4ssword"))

	// lookup is case-insensitive on the caller side
	found, err := users.FindByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	found, err = users.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	// same email, different case
	_, err = users.Create(ctx, &models.RegisterInput{
		Username: "other",
		Email:    "alice@EXAMPLE.com",
		Password: "p4ssword",
	}, models.RoleUser)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))
	assert.Equal(t, "Un utilisateur avec cet email ou ce nom d'utilisateur existe déjà", utils.SafeMessage(err))

	// same username, different email
	_, err = users.Create(ctx, &models.RegisterInput{
		Username: "alice",
		Email:    "new@example.com",
		Password: "p4ssword",
	}, models.RoleUser)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))

	_, err = users.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestUserRepoRejectsInvalidInput(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepo(db)
	ctx := context.Background()

	cases := []struct {
		name string
		in   models.RegisterInput
	}{
		{"short username", models.RegisterInput{Username: "ab", Email: "a@x.com", Password: "p4ssword"}},
		{"bad email", models.RegisterInput{Username: "alice", Email: "not-an-email", Password: "p4ssword"}},
		{"short password", models.RegisterInput{Username: "alice", Email: "a@x.com", Password: "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := users.Create(ctx, &tc.in, models.RoleUser)
			require.Error(t, err)
			assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
		})
	}
}

func TestProfileRepoSingleton(t *testing.T) {
	db := setupTestDB(t)
	profiles := NewProfileRepo(db)
	ctx := context.Background()

	p, err := profiles.Find(ctx)
	require.NoError(t, err)
	assert.Nil(t, p, "empty collection yields nil profile, not an error")

	in := &models.ProfileInput{
		LastName:  "Oual",
		FirstName: "Doja",
		Title:     "Développeur Full Stack",
		Bio:       "bio",
		Email:     "Me@Example.com",
	}
	created, err := profiles.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", created.Email)

	_, err = profiles.Create(ctx, in)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))
	assert.Equal(t, "Un profil existe déjà. Utilisez updateProfil pour le modifier.", utils.SafeMessage(err))

	in.Title = "Lead Developer"
	updated, err := profiles.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Lead Developer", updated.Title)
	assert.Equal(t, created.ID, updated.ID)

	_, err = profiles.Update(ctx, primitive.NewObjectID(), in)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
	assert.Equal(t, "Profil non trouvé", utils.SafeMessage(err))

	require.NoError(t, profiles.Delete(ctx, created.ID))

	p, err = profiles.Find(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)

	// the slot is free again after deletion
	_, err = profiles.Create(ctx, in)
	require.NoError(t, err)
}

func TestSkillRepoSortingAndConflict(t *testing.T) {
	db := setupTestDB(t)
	skills := NewSkillRepo(db)
	ctx := context.Background()

	seed := []models.SkillInput{
		{Name: "React", Level: "AVANCE", Category: "FRONTEND"},
		{Name: "Go", Level: "EXPERT", Category: "BACKEND"},
		{Name: "Docker", Level: "INTERMEDIAIRE", Category: "DEVOPS"},
		{Name: "Express", Level: "AVANCE", Category: "BACKEND"},
	}
	for i := range seed {
		_, err := skills.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	all, err := skills.FindAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	// categorie asc, then nom asc
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Express", "Go", "Docker", "React"}, names)

	backend, err := skills.FindAll(ctx, "BACKEND")
	require.NoError(t, err)
	require.Len(t, backend, 2)
	assert.Equal(t, "Express", backend[0].Name)
	assert.Equal(t, "Go", backend[1].Name)

	_, err = skills.Create(ctx, &models.SkillInput{Name: "Go", Level: "DEBUTANT", Category: "AUTRE"})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))
	assert.Equal(t, "Une compétence avec ce nom existe déjà", utils.SafeMessage(err))

	_, err = skills.Update(ctx, primitive.NewObjectID(), &seed[0])
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	err = skills.Delete(ctx, primitive.NewObjectID())
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
	assert.Equal(t, "Compétence non trouvée", utils.SafeMessage(err))
}

func TestProjectRepoDefaultsAndSorting(t *testing.T) {
	db := setupTestDB(t)
	projects := NewProjectRepo(db)
	ctx := context.Background()

	date := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	created, err := projects.Create(ctx, &models.ProjectInput{
		Title:        "Portfolio",
		Description:  "Site portfolio",
		Technologies: []primitive.ObjectID{},
		StartDate:    date("2023-06-01"),
		Order:        intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, created.Status, "statut defaults to EN_COURS")
	assert.NotNil(t, created.Images, "images defaults to an empty list")
	assert.Len(t, created.Images, 0)

	seed := []models.ProjectInput{
		{Title: "old done", Description: "d", Technologies: []primitive.ObjectID{}, Status: strPtr("TERMINE"), StartDate: date("2022-01-01"), Order: intPtr(1)},
		{Title: "new done", Description: "d", Technologies: []primitive.ObjectID{}, Status: strPtr("TERMINE"), StartDate: date("2024-01-01"), Order: intPtr(1)},
		{Title: "first", Description: "d", Technologies: []primitive.ObjectID{}, Status: strPtr("TERMINE"), StartDate: date("2021-01-01"), Order: intPtr(0)},
	}
	for i := range seed {
		_, err := projects.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	done, err := projects.FindAll(ctx, "TERMINE")
	require.NoError(t, err)
	require.Len(t, done, 3)
	// ordre asc, then dateDebut desc
	assert.Equal(t, "first", done[0].Title)
	assert.Equal(t, "new done", done[1].Title)
	assert.Equal(t, "old done", done[2].Title)

	all, err := projects.FindAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = projects.FindByID(ctx, primitive.NewObjectID())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
	assert.Equal(t, "Projet non trouvé", utils.SafeMessage(err))
}

func TestProjectRepoRejectsEndBeforeStart(t *testing.T) {
	db := setupTestDB(t)
	projects := NewProjectRepo(db)
	ctx := context.Background()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -3, 0)

	_, err := projects.Create(ctx, &models.ProjectInput{
		Title:        "Bad dates",
		Description:  "d",
		Technologies: []primitive.ObjectID{},
		StartDate:    start,
		EndDate:      &end,
	})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Equal(t, "La date de fin doit être après la date de début", utils.SafeMessage(err))
}

// Deleting a skill leaves referencing projects untouched; the stale id
// simply resolves to nothing on read.
func TestSkillDeleteDoesNotCascadeToProjects(t *testing.T) {
	db := setupTestDB(t)
	skills := NewSkillRepo(db)
	projects := NewProjectRepo(db)
	ctx := context.Background()

	skill, err := skills.Create(ctx, &models.SkillInput{Name: "Go", Level: "EXPERT", Category: "BACKEND"})
	require.NoError(t, err)

	project, err := projects.Create(ctx, &models.ProjectInput{
		Title:        "API",
		Description:  "d",
		Technologies: []primitive.ObjectID{skill.ID},
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, skills.Delete(ctx, skill.ID))

	reloaded, err := projects.FindByID(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Technologies, 1, "reference list is untouched")
	assert.Equal(t, skill.ID, reloaded.Technologies[0])

	resolved, err := skills.FindByIDs(ctx, reloaded.Technologies)
	require.NoError(t, err)
	assert.Len(t, resolved, 0, "stale reference resolves to nothing")
}

func TestExperienceRepoLifecycle(t *testing.T) {
	db := setupTestDB(t)
	experiences := NewExperienceRepo(db)
	ctx := context.Background()

	date := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	seed := []models.ExperienceInput{
		{Company: "Acme", Position: "Dev", Type: "CDI", Description: "d", Skills: []primitive.ObjectID{}, StartDate: date("2020-01-01"), Order: intPtr(1)},
		{Company: "Beta", Position: "Dev", Type: "FREELANCE", Description: "d", Skills: []primitive.ObjectID{}, StartDate: date("2023-01-01"), Ongoing: boolPtr(true), Order: intPtr(0)},
		{Company: "Gamma", Position: "Stagiaire", Type: "STAGE", Description: "d", Skills: []primitive.ObjectID{}, StartDate: date("2019-01-01"), Order: intPtr(1)},
	}
	var first *models.Experience
	for i := range seed {
		e, err := experiences.Create(ctx, &seed[i])
		require.NoError(t, err)
		if i == 0 {
			first = e
		}
	}

	all, err := experiences.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// ordre asc, then dateDebut desc
	assert.Equal(t, "Beta", all[0].Company)
	assert.Equal(t, "Acme", all[1].Company)
	assert.Equal(t, "Gamma", all[2].Company)

	end := date("2022-12-31")
	updated, err := experiences.Update(ctx, first.ID, &models.ExperienceInput{
		Company:     "Acme",
		Position:    "Senior Dev",
		Type:        "CDI",
		Description: "d",
		Skills:      []primitive.ObjectID{},
		StartDate:   first.StartDate,
		EndDate:     &end,
		Order:       intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Dev", updated.Position)
	require.NotNil(t, updated.EndDate)

	_, err = experiences.Create(ctx, &models.ExperienceInput{
		Company:     "Acme",
		Position:    "Dev",
		Type:        "TEMPS_PARTIEL",
		Description: "d",
		Skills:      []primitive.ObjectID{},
		StartDate:   date("2020-01-01"),
	})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument), "unknown contract type is rejected")

	require.NoError(t, experiences.Delete(ctx, first.ID))
	_, err = experiences.FindByID(ctx, first.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
	assert.Equal(t, "Expérience non trouvée", utils.SafeMessage(err))

	err = experiences.Delete(ctx, first.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

// An update carrying only the required keys leaves the optional stored
// fields alone: an ARCHIVE project is not silently un-archived and its
// images, ordre and dateFin survive.
func TestProjectRepoUpdateKeepsOmittedFields(t *testing.T) {
	db := setupTestDB(t)
	projects := NewProjectRepo(db)
	ctx := context.Background()

	end := time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC)
	created, err := projects.Create(ctx, &models.ProjectInput{
		Title:        "Legacy",
		Description:  "d",
		Technologies: []primitive.ObjectID{},
		Images:       []string{"https://example.com/shot.png"},
		Status:       strPtr("ARCHIVE"),
		StartDate:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      &end,
		Order:        intPtr(2),
	})
	require.NoError(t, err)

	updated, err := projects.Update(ctx, created.ID, &models.ProjectInput{
		Title:        "Legacy v2",
		Description:  "d2",
		Technologies: []primitive.ObjectID{},
		StartDate:    created.StartDate,
	})
	require.NoError(t, err)

	assert.Equal(t, "Legacy v2", updated.Title)
	assert.Equal(t, models.StatusArchived, updated.Status, "omitted statut keeps the stored value")
	assert.Equal(t, 2, updated.Order, "omitted ordre keeps the stored value")
	assert.Equal(t, []string{"https://example.com/shot.png"}, updated.Images, "omitted images keep the stored value")
	require.NotNil(t, updated.EndDate, "omitted dateFin keeps the stored value")
	assert.True(t, updated.EndDate.Equal(end))
}

func TestSkillRepoUpdateKeepsOmittedFields(t *testing.T) {
	db := setupTestDB(t)
	skills := NewSkillRepo(db)
	ctx := context.Background()

	created, err := skills.Create(ctx, &models.SkillInput{
		Name:       "Go",
		Level:      "AVANCE",
		Category:   "BACKEND",
		Percentage: intPtr(85),
		Icon:       strPtr("https://example.com/go.svg"),
	})
	require.NoError(t, err)

	updated, err := skills.Update(ctx, created.ID, &models.SkillInput{
		Name:     "Go",
		Level:    "EXPERT",
		Category: "BACKEND",
	})
	require.NoError(t, err)

	assert.Equal(t, models.LevelExpert, updated.Level)
	require.NotNil(t, updated.Percentage, "omitted pourcentage keeps the stored value")
	assert.Equal(t, 85, *updated.Percentage)
	assert.Equal(t, "https://example.com/go.svg", updated.Icon, "omitted icone keeps the stored value")
}

// FindByIDs returns skills in the order of the reference list, the way
// stored references are displayed on projects and experiences.
func TestSkillRepoFindByIDsKeepsOrder(t *testing.T) {
	db := setupTestDB(t)
	skills := NewSkillRepo(db)
	ctx := context.Background()

	react, err := skills.Create(ctx, &models.SkillInput{Name: "React", Level: "AVANCE", Category: "FRONTEND"})
	require.NoError(t, err)
	goSkill, err := skills.Create(ctx, &models.SkillInput{Name: "Go", Level: "EXPERT", Category: "BACKEND"})
	require.NoError(t, err)

	// reference order is the reverse of the catalogue sort
	resolved, err := skills.FindByIDs(ctx, []primitive.ObjectID{react.ID, goSkill.ID})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "React", resolved[0].Name)
	assert.Equal(t, "Go", resolved[1].Name)

	// unknown ids stay silently absent without disturbing the order
	resolved, err = skills.FindByIDs(ctx, []primitive.ObjectID{goSkill.ID, primitive.NewObjectID(), react.ID})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "Go", resolved[0].Name)
	assert.Equal(t, "React", resolved[1].Name)
}
