package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/doja-oual/portfolio-backend/internal/models"
)

// NewSchema declares the full queryable/mutable surface and binds each
// field to the resolver. The wire names stay French, matching the
// stored documents.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	roleEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "Role",
		Values: graphql.EnumValueConfigMap{
			"ADMIN": &graphql.EnumValueConfig{Value: "ADMIN"},
			"USER":  &graphql.EnumValueConfig{Value: "USER"},
		},
	})

	levelEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "NiveauCompetence",
		Values: graphql.EnumValueConfigMap{
			"DEBUTANT":      &graphql.EnumValueConfig{Value: "DEBUTANT"},
			"INTERMEDIAIRE": &graphql.EnumValueConfig{Value: "INTERMEDIAIRE"},
			"AVANCE":        &graphql.EnumValueConfig{Value: "AVANCE"},
			"EXPERT":        &graphql.EnumValueConfig{Value: "EXPERT"},
		},
	})

	categoryEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "CategorieCompetence",
		Values: graphql.EnumValueConfigMap{
			"FRONTEND": &graphql.EnumValueConfig{Value: "FRONTEND"},
			"BACKEND":  &graphql.EnumValueConfig{Value: "BACKEND"},
			"DATABASE": &graphql.EnumValueConfig{Value: "DATABASE"},
			"DEVOPS":   &graphql.EnumValueConfig{Value: "DEVOPS"},
			"AUTRE":    &graphql.EnumValueConfig{Value: "AUTRE"},
		},
	})

	statusEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "StatutProjet",
		Values: graphql.EnumValueConfigMap{
			"EN_COURS": &graphql.EnumValueConfig{Value: "EN_COURS"},
			"TERMINE":  &graphql.EnumValueConfig{Value: "TERMINE"},
			"ARCHIVE":  &graphql.EnumValueConfig{Value: "ARCHIVE"},
		},
	})

	contractEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "TypeExperience",
		Values: graphql.EnumValueConfigMap{
			"CDI":        &graphql.EnumValueConfig{Value: "CDI"},
			"CDD":        &graphql.EnumValueConfig{Value: "CDD"},
			"FREELANCE":  &graphql.EnumValueConfig{Value: "FREELANCE"},
			"STAGE":      &graphql.EnumValueConfig{Value: "STAGE"},
			"ALTERNANCE": &graphql.EnumValueConfig{Value: "ALTERNANCE"},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if u := userSource(p.Source); u != nil {
						return u.ID.Hex(), nil
					}
					return nil, nil
				},
			},
			"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"role": &graphql.Field{
				Type: graphql.NewNonNull(roleEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if u := userSource(p.Source); u != nil {
						return string(u.Role), nil
					}
					return nil, nil
				},
			},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	socialLinksType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ReseauxSociaux",
		Fields: graphql.Fields{
			"linkedin": &graphql.Field{Type: graphql.String},
			"github":   &graphql.Field{Type: graphql.String},
			"twitter":  &graphql.Field{Type: graphql.String},
			"website":  &graphql.Field{Type: graphql.String},
		},
	})

	addressType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Adresse",
		Fields: graphql.Fields{
			"ville": &graphql.Field{Type: graphql.String},
			"pays":  &graphql.Field{Type: graphql.String},
		},
	})

	profileType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Profil",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := profileSource(p.Source); pr != nil {
						return pr.ID.Hex(), nil
					}
					return nil, nil
				},
			},
			"nom":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"prenom":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"titre":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"bio":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"telephone":      &graphql.Field{Type: graphql.String},
			"photo":          &graphql.Field{Type: graphql.String},
			"cv":             &graphql.Field{Type: graphql.String},
			"reseauxSociaux": &graphql.Field{Type: socialLinksType},
			"adresse":        &graphql.Field{Type: addressType},
			"createdAt":      &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt":      &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	skillType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Competence",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if s := skillSource(p.Source); s != nil {
						return s.ID.Hex(), nil
					}
					return nil, nil
				},
			},
			"nom": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"niveau": &graphql.Field{
				Type: graphql.NewNonNull(levelEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if s := skillSource(p.Source); s != nil {
						return string(s.Level), nil
					}
					return nil, nil
				},
			},
			"categorie": &graphql.Field{
				Type: graphql.NewNonNull(categoryEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if s := skillSource(p.Source); s != nil {
						return string(s.Category), nil
					}
					return nil, nil
				},
			},
			"pourcentage": &graphql.Field{Type: graphql.Int},
			"icone":       &graphql.Field{Type: graphql.String},
			"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	projectType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Projet",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := projectSource(p.Source); pr != nil {
						return pr.ID.Hex(), nil
					}
					return nil, nil
				},
			},
			"titre":             &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"descriptionLongue": &graphql.Field{Type: graphql.String},
			"technologies": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(skillType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr := projectSource(p.Source)
					if pr == nil {
						return []models.Skill{}, nil
					}
					return r.resolveSkillRefs(p, pr.Technologies)
				},
			},
			"images":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
			"lienGithub": &graphql.Field{Type: graphql.String},
			"lienDemo":   &graphql.Field{Type: graphql.String},
			"statut": &graphql.Field{
				Type: graphql.NewNonNull(statusEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := projectSource(p.Source); pr != nil {
						return string(pr.Status), nil
					}
					return nil, nil
				},
			},
			"dateDebut": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"dateFin":   &graphql.Field{Type: graphql.DateTime},
			"ordre":     &graphql.Field{Type: graphql.Int},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	experienceType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Experience",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if e := experienceSource(p.Source); e != nil {
						return e.ID.Hex(), nil
					}
					return nil, nil
				},
			},
			"entreprise": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"poste":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"type": &graphql.Field{
				Type: graphql.NewNonNull(contractEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if e := experienceSource(p.Source); e != nil {
						return string(e.Type), nil
					}
					return nil, nil
				},
			},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"competences": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(skillType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					e := experienceSource(p.Source)
					if e == nil {
						return []models.Skill{}, nil
					}
					return r.resolveSkillRefs(p, e.Skills)
				},
			},
			"dateDebut": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"dateFin":   &graphql.Field{Type: graphql.DateTime},
			"enCours":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"lieu":      &graphql.Field{Type: graphql.String},
			"logo":      &graphql.Field{Type: graphql.String},
			"ordre":     &graphql.Field{Type: graphql.Int},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	portfolioType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Portfolio",
		Fields: graphql.Fields{
			"profil":      &graphql.Field{Type: profileType},
			"projets":     &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(projectType)))},
			"competences": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(skillType)))},
			"experiences": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(experienceType)))},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})

	socialLinksInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ReseauxSociauxInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"linkedin": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"github":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"twitter":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"website":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	addressInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AdresseInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"ville": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"pays":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	profileInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProfilInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nom":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"prenom":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"titre":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"bio":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"telephone":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"photo":          &graphql.InputObjectFieldConfig{Type: graphql.String},
			"cv":             &graphql.InputObjectFieldConfig{Type: graphql.String},
			"reseauxSociaux": &graphql.InputObjectFieldConfig{Type: socialLinksInput},
			"adresse":        &graphql.InputObjectFieldConfig{Type: addressInput},
		},
	})

	skillInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CompetenceInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nom":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"niveau":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(levelEnum)},
			"categorie":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(categoryEnum)},
			"pourcentage": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"icone":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	projectInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProjetInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"titre":             &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"descriptionLongue": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"technologies":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
			"images":            &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			"lienGithub":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"lienDemo":          &graphql.InputObjectFieldConfig{Type: graphql.String},
			"statut":            &graphql.InputObjectFieldConfig{Type: statusEnum},
			"dateDebut":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.DateTime)},
			"dateFin":           &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"ordre":             &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})

	experienceInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ExperienceInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"entreprise":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"poste":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"type":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(contractEnum)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"competences": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
			"dateDebut":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.DateTime)},
			"dateFin":     &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"enCours":     &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"lieu":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"logo":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"ordre":       &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Resolve: r.wrap("hello", r.resolveHello),
			},
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.wrap("me", r.resolveMe),
			},
			"getPortfolio": &graphql.Field{
				Type:    graphql.NewNonNull(portfolioType),
				Resolve: r.wrap("getPortfolio", r.resolvePortfolio),
			},
			"getProfil": &graphql.Field{
				Type:    profileType,
				Resolve: r.wrap("getProfil", r.resolveProfile),
			},
			"getProjets": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(projectType))),
				Args: graphql.FieldConfigArgument{
					"statut": &graphql.ArgumentConfig{Type: statusEnum},
				},
				Resolve: r.wrap("getProjets", r.resolveProjects),
			},
			"getProjet": &graphql.Field{
				Type:    projectType,
				Args:    idArg,
				Resolve: r.wrap("getProjet", r.resolveProject),
			},
			"getCompetences": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(skillType))),
				Args: graphql.FieldConfigArgument{
					"categorie": &graphql.ArgumentConfig{Type: categoryEnum},
				},
				Resolve: r.wrap("getCompetences", r.resolveSkills),
			},
			"getCompetence": &graphql.Field{
				Type:    skillType,
				Args:    idArg,
				Resolve: r.wrap("getCompetence", r.resolveSkill),
			},
			"getExperiences": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(experienceType))),
				Resolve: r.wrap("getExperiences", r.resolveExperiences),
			},
			"getExperience": &graphql.Field{
				Type:    experienceType,
				Args:    idArg,
				Resolve: r.wrap("getExperience", r.resolveExperience),
			},
		},
	})

	inputArg := func(in *graphql.InputObject) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(in)},
		}
	}
	idInputArgs := func(in *graphql.InputObject) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(in)},
		}
	}

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.wrap("login", r.resolveLogin),
			},
			"register": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.wrap("register", r.resolveRegister),
			},
			"createProfil": &graphql.Field{
				Type:    graphql.NewNonNull(profileType),
				Args:    inputArg(profileInput),
				Resolve: r.wrap("createProfil", r.resolveCreateProfile),
			},
			"updateProfil": &graphql.Field{
				Type:    graphql.NewNonNull(profileType),
				Args:    idInputArgs(profileInput),
				Resolve: r.wrap("updateProfil", r.resolveUpdateProfile),
			},
			"deleteProfil": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArg,
				Resolve: r.wrap("deleteProfil", r.resolveDeleteProfile),
			},
			"createCompetence": &graphql.Field{
				Type:    graphql.NewNonNull(skillType),
				Args:    inputArg(skillInput),
				Resolve: r.wrap("createCompetence", r.resolveCreateSkill),
			},
			"updateCompetence": &graphql.Field{
				Type:    graphql.NewNonNull(skillType),
				Args:    idInputArgs(skillInput),
				Resolve: r.wrap("updateCompetence", r.resolveUpdateSkill),
			},
			"deleteCompetence": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArg,
				Resolve: r.wrap("deleteCompetence", r.resolveDeleteSkill),
			},
			"createProjet": &graphql.Field{
				Type:    graphql.NewNonNull(projectType),
				Args:    inputArg(projectInput),
				Resolve: r.wrap("createProjet", r.resolveCreateProject),
			},
			"updateProjet": &graphql.Field{
				Type:    graphql.NewNonNull(projectType),
				Args:    idInputArgs(projectInput),
				Resolve: r.wrap("updateProjet", r.resolveUpdateProject),
			},
			"deleteProjet": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArg,
				Resolve: r.wrap("deleteProjet", r.resolveDeleteProject),
			},
			"createExperience": &graphql.Field{
				Type:    graphql.NewNonNull(experienceType),
				Args:    inputArg(experienceInput),
				Resolve: r.wrap("createExperience", r.resolveCreateExperience),
			},
			"updateExperience": &graphql.Field{
				Type:    graphql.NewNonNull(experienceType),
				Args:    idInputArgs(experienceInput),
				Resolve: r.wrap("updateExperience", r.resolveUpdateExperience),
			},
			"deleteExperience": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArg,
				Resolve: r.wrap("deleteExperience", r.resolveDeleteExperience),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// Repositories return values in slices and pointers for single
// lookups; these helpers accept either shape.

func userSource(src interface{}) *models.User {
	switch v := src.(type) {
	case *models.User:
		return v
	case models.User:
		return &v
	}
	return nil
}

func profileSource(src interface{}) *models.Profile {
	switch v := src.(type) {
	case *models.Profile:
		return v
	case models.Profile:
		return &v
	}
	return nil
}

func skillSource(src interface{}) *models.Skill {
	switch v := src.(type) {
	case *models.Skill:
		return v
	case models.Skill:
		return &v
	}
	return nil
}

func projectSource(src interface{}) *models.Project {
	switch v := src.(type) {
	case *models.Project:
		return v
	case models.Project:
		return &v
	}
	return nil
}

func experienceSource(src interface{}) *models.Experience {
	switch v := src.(type) {
	case *models.Experience:
		return v
	case models.Experience:
		return &v
	}
	return nil
}
