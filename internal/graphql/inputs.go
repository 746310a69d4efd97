package graphql

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/doja-oual/portfolio-backend/internal/models"
	"github.com/doja-oual/portfolio-backend/internal/utils"
)

// The engine hands input objects over as map[string]interface{}; these
// decoders turn them into the typed inputs the repositories validate.

func asMap(v interface{}) (map[string]interface{}, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, utils.E(utils.CodeInvalidArgument, "", "Données invalides", nil)
	}
	return m, nil
}

func strArg(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

// Pointer variants keep key absence observable: the repositories only
// touch stored fields whose input value is non-nil.

func strPtrArg(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func intPtrArg(m map[string]interface{}, key string) *int {
	if v, ok := m[key].(int); ok {
		return &v
	}
	return nil
}

func boolPtrArg(m map[string]interface{}, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

func timeArg(m map[string]interface{}, key string) time.Time {
	v, _ := m[key].(time.Time)
	return v
}

func timePtrArg(m map[string]interface{}, key string) *time.Time {
	if v, ok := m[key].(time.Time); ok {
		return &v
	}
	return nil
}

func strListArg(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func idListArg(m map[string]interface{}, key string) ([]primitive.ObjectID, error) {
	raw, ok := m[key].([]interface{})
	if !ok {
		return []primitive.ObjectID{}, nil
	}
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, v := range raw {
		s, _ := v.(string)
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, utils.E(utils.CodeInvalidArgument, "", "Identifiant invalide", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func decodeProfileInput(v interface{}) (*models.ProfileInput, error) {
	m, err := asMap(v)
	if err != nil {
		return nil, err
	}

	in := &models.ProfileInput{
		LastName:  strArg(m, "nom"),
		FirstName: strArg(m, "prenom"),
		Title:     strArg(m, "titre"),
		Bio:       strArg(m, "bio"),
		Email:     strArg(m, "email"),
		Phone:     strPtrArg(m, "telephone"),
		Photo:     strPtrArg(m, "photo"),
		CV:        strPtrArg(m, "cv"),
	}

	if rs, ok := m["reseauxSociaux"].(map[string]interface{}); ok {
		in.SocialLinks = &models.SocialLinksInput{
			LinkedIn: strArg(rs, "linkedin"),
			GitHub:   strArg(rs, "github"),
			Twitter:  strArg(rs, "twitter"),
			Website:  strArg(rs, "website"),
		}
	}
	if ad, ok := m["adresse"].(map[string]interface{}); ok {
		in.Address = &models.AddressInput{
			City:    strArg(ad, "ville"),
			Country: strArg(ad, "pays"),
		}
	}
	return in, nil
}

func decodeSkillInput(v interface{}) (*models.SkillInput, error) {
	m, err := asMap(v)
	if err != nil {
		return nil, err
	}

	return &models.SkillInput{
		Name:       strArg(m, "nom"),
		Level:      strArg(m, "niveau"),
		Category:   strArg(m, "categorie"),
		Percentage: intPtrArg(m, "pourcentage"),
		Icon:       strPtrArg(m, "icone"),
	}, nil
}

func decodeProjectInput(v interface{}) (*models.ProjectInput, error) {
	m, err := asMap(v)
	if err != nil {
		return nil, err
	}

	technologies, err := idListArg(m, "technologies")
	if err != nil {
		return nil, err
	}

	return &models.ProjectInput{
		Title:           strArg(m, "titre"),
		Description:     strArg(m, "description"),
		LongDescription: strPtrArg(m, "descriptionLongue"),
		Technologies:    technologies,
		Images:          strListArg(m, "images"),
		GitHubLink:      strPtrArg(m, "lienGithub"),
		DemoLink:        strPtrArg(m, "lienDemo"),
		Status:          strPtrArg(m, "statut"),
		StartDate:       timeArg(m, "dateDebut"),
		EndDate:         timePtrArg(m, "dateFin"),
		Order:           intPtrArg(m, "ordre"),
	}, nil
}

func decodeExperienceInput(v interface{}) (*models.ExperienceInput, error) {
	m, err := asMap(v)
	if err != nil {
		return nil, err
	}

	skills, err := idListArg(m, "competences")
	if err != nil {
		return nil, err
	}

	return &models.ExperienceInput{
		Company:     strArg(m, "entreprise"),
		Position:    strArg(m, "poste"),
		Type:        strArg(m, "type"),
		Description: strArg(m, "description"),
		Skills:      skills,
		StartDate:   timeArg(m, "dateDebut"),
		EndDate:     timePtrArg(m, "dateFin"),
		Ongoing:     boolPtrArg(m, "enCours"),
		Location:    strPtrArg(m, "lieu"),
		Logo:        strPtrArg(m, "logo"),
		Order:       intPtrArg(m, "ordre"),
	}, nil
}
