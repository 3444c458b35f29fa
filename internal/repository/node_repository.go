package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"oci_kiosk/model"
)

// FetchAllNodes returns every node flat, ordered by (order, _id) so that
// siblings come back in the order the CMS arranged them.
func FetchAllNodes(ctx context.Context, coll *mongo.Collection) ([]model.Node, error) {
	cursor, err := coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var nodes []model.Node
	if err := cursor.All(ctx, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

func FetchNodeByID(ctx context.Context, coll *mongo.Collection, id bson.ObjectID) (*model.Node, error) {
	var node model.Node
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&node); err != nil {
		return nil, err
	}
	return &node, nil
}

func InsertNode(ctx context.Context, coll *mongo.Collection, node *model.Node) error {
	res, err := coll.InsertOne(ctx, node)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		node.ID = oid
	}
	return nil
}

// UpdateNode applies a partial $set and returns the updated document.
func UpdateNode(ctx context.Context, coll *mongo.Collection, id bson.ObjectID, set bson.M, unset bson.M) (*model.Node, error) {
	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var node model.Node
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&node)
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// DeleteNodes removes a node together with its subtree in a single call.
func DeleteNodes(ctx context.Context, coll *mongo.Collection, ids []bson.ObjectID) (int64, error) {
	res, err := coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
