package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique and query indexes the repositories
// rely on. Uniqueness of user email/username and skill name is enforced
// here rather than in application code.
func EnsureIndexes(client *mongo.Client, dbName string) error {
	db := client.Database(dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := db.Collection("users")
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("uniq_username").SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	competences := db.Collection("competences")
	_, err = competences.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "nom", Value: 1}},
			Options: options.Index().SetName("uniq_nom").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "categorie", Value: 1}, {Key: "nom", Value: 1}},
			Options: options.Index().SetName("by_categorie_nom"),
		},
	})
	if err != nil {
		return err
	}

	projets := db.Collection("projets")
	_, err = projets.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "statut", Value: 1}},
			Options: options.Index().SetName("by_statut"),
		},
		{
			Keys:    bson.D{{Key: "ordre", Value: 1}, {Key: "dateDebut", Value: -1}},
			Options: options.Index().SetName("by_ordre_date"),
		},
	})
	if err != nil {
		return err
	}

	experiences := db.Collection("experiences")
	_, err = experiences.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ordre", Value: 1}, {Key: "dateDebut", Value: -1}},
			Options: options.Index().SetName("by_ordre_date"),
		},
	})
	return err
}
