package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"oci_kiosk/model"
)

// FetchHome returns the singleton home document, or mongo.ErrNoDocuments.
func FetchHome(ctx context.Context, coll *mongo.Collection) (*model.Home, error) {
	var home model.Home
	if err := coll.FindOne(ctx, bson.M{}).Decode(&home); err != nil {
		return nil, err
	}
	return &home, nil
}

// UpsertHome replaces the singleton home document, creating it on first use.
func UpsertHome(ctx context.Context, coll *mongo.Collection, video *model.Video, subtitle *model.Subtitle) (*model.Home, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	unset := bson.M{}
	if video != nil {
		set["video"] = video
	} else {
		unset["video"] = ""
	}
	if subtitle != nil {
		set["subtitle"] = subtitle
	} else {
		unset["subtitle"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var home model.Home
	err := coll.FindOneAndUpdate(ctx, bson.M{}, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)).Decode(&home)
	if err != nil {
		return nil, err
	}
	return &home, nil
}
