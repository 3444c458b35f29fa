package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// EnsureKioskIndexes creates the indexes the read paths lean on: subtree
// walks by parent, newest-agenda selection, and the playing-VVIP lookup.
func EnsureKioskIndexes(db *mongo.Database) error {
	ctx := context.Background()

	_, err := db.Collection("nodes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "parent", Value: 1}, {Key: "order", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("agendas").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("vvips").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "play", Value: 1}},
	})
	return err
}
