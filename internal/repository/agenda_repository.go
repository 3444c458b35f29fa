package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"oci_kiosk/model"
)

// FetchAgendas returns all agenda documents, newest first. The first element
// is "the" live agenda; everything downstream relies on this ordering.
func FetchAgendas(ctx context.Context, coll *mongo.Collection) ([]model.Agenda, error) {
	cursor, err := coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var agendas []model.Agenda
	if err := cursor.All(ctx, &agendas); err != nil {
		return nil, err
	}
	return agendas, nil
}

// FetchNewestAgenda returns the live agenda document, or mongo.ErrNoDocuments.
func FetchNewestAgenda(ctx context.Context, coll *mongo.Collection) (*model.Agenda, error) {
	var agenda model.Agenda
	err := coll.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})).Decode(&agenda)
	if err != nil {
		return nil, err
	}
	return &agenda, nil
}

func FetchAgendaByID(ctx context.Context, coll *mongo.Collection, id bson.ObjectID) (*model.Agenda, error) {
	var agenda model.Agenda
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&agenda); err != nil {
		return nil, err
	}
	return &agenda, nil
}

func InsertAgenda(ctx context.Context, coll *mongo.Collection, agenda *model.Agenda) error {
	now := time.Now().UTC()
	agenda.CreatedAt = now
	agenda.UpdatedAt = now

	res, err := coll.InsertOne(ctx, agenda)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		agenda.ID = oid
	}
	return nil
}

// ReplaceAgendaItems swaps the full item list, returning the updated document.
func ReplaceAgendaItems(ctx context.Context, coll *mongo.Collection, id bson.ObjectID, items []model.AgendaItem) (*model.Agenda, error) {
	var agenda model.Agenda
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"items": items, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&agenda)
	if err != nil {
		return nil, err
	}
	return &agenda, nil
}

func DeleteAgenda(ctx context.Context, coll *mongo.Collection, id bson.ObjectID) error {
	_, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
