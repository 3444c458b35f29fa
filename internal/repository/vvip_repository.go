package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"oci_kiosk/model"
)

func FetchVVIPs(ctx context.Context, coll *mongo.Collection) ([]model.VVIP, error) {
	cursor, err := coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vvips []model.VVIP
	if err := cursor.All(ctx, &vvips); err != nil {
		return nil, err
	}
	return vvips, nil
}

func FetchVVIPByID(ctx context.Context, coll *mongo.Collection, id bson.ObjectID) (*model.VVIP, error) {
	var vvip model.VVIP
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&vvip); err != nil {
		return nil, err
	}
	return &vvip, nil
}

// FetchPlayingVVIP returns the VVIP currently toggled to play, or
// mongo.ErrNoDocuments when none is.
func FetchPlayingVVIP(ctx context.Context, coll *mongo.Collection) (*model.VVIP, error) {
	var vvip model.VVIP
	if err := coll.FindOne(ctx, bson.M{"play": true}).Decode(&vvip); err != nil {
		return nil, err
	}
	return &vvip, nil
}

func InsertVVIP(ctx context.Context, coll *mongo.Collection, vvip *model.VVIP) error {
	res, err := coll.InsertOne(ctx, vvip)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		vvip.ID = oid
	}
	return nil
}

func UpdateVVIP(ctx context.Context, coll *mongo.Collection, id bson.ObjectID, set bson.M) (*model.VVIP, error) {
	var vvip model.VVIP
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&vvip)
	if err != nil {
		return nil, err
	}
	return &vvip, nil
}

// ClearPlayExcept flips play off on every VVIP other than keep. Run before
// turning play on so that at most one plays at any time.
func ClearPlayExcept(ctx context.Context, coll *mongo.Collection, keep bson.ObjectID) error {
	_, err := coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$ne": keep}, "play": true},
		bson.M{"$set": bson.M{"play": false}})
	return err
}

func DeleteVVIP(ctx context.Context, coll *mongo.Collection, id bson.ObjectID) error {
	_, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
