package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"oci_kiosk/internal/repository"
	"oci_kiosk/model"
)

var ErrVVIPNotFound = errors.New("vvip not found")

// SetVVIPPlay toggles playback for one VVIP. Turning play on clears every
// other VVIP first, so /api/vvips/playing never returns more than one.
func SetVVIPPlay(ctx context.Context, coll *mongo.Collection, id bson.ObjectID, play bool) (*model.VVIP, error) {
	if play {
		if err := repository.ClearPlayExcept(ctx, coll, id); err != nil {
			return nil, err
		}
	}

	vvip, err := repository.UpdateVVIP(ctx, coll, id, bson.M{"play": play})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVVIPNotFound
		}
		return nil, err
	}
	return vvip, nil
}
