package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"oci_kiosk/dto"
	"oci_kiosk/internal/repository"
	"oci_kiosk/internal/storage"
	"oci_kiosk/model"
	"oci_kiosk/services"
)

const vvipsColl = "vvips"

func GetVVIPsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vvips, err := repository.FetchVVIPs(context.Background(), db.Collection(vvipsColl))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		if vvips == nil {
			vvips = []model.VVIP{}
		}
		return c.JSON(vvips)
	}
}

// GetPlayingVVIPHandler godoc
// @Summary      Get the VVIP currently playing
// @Description  Return the single VVIP with play=true, or JSON null.
// @Tags         vvips
// @Produce      json
// @Success      200  {object}  model.VVIP
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/vvips/playing [get]
func GetPlayingVVIPHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vvip, err := repository.FetchPlayingVVIP(context.Background(), db.Collection(vvipsColl))
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(nil)
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(vvip)
	}
}

func CreateVVIPHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateVVIPDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if body.Name == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "name is required"})
		}

		vvip := model.VVIP{
			Name:        body.Name,
			Designation: body.Designation,
			Video:       body.Video,
		}
		if err := repository.InsertVVIP(context.Background(), db.Collection(vvipsColl), &vvip); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(vvip)
	}
}

// UpdateVVIPHandler godoc
// @Summary      Update a VVIP
// @Description  Partial update. Setting play=true clears play on every other VVIP.
// @Tags         vvips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "VVIP ID (hex)"
// @Param        data  body      dto.UpdateVVIPDTO  true  "Fields to update"
// @Success      200   {object}  model.VVIP
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/vvips/{id} [put]
func UpdateVVIPHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid vvip id"})
		}

		var body dto.UpdateVVIPDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx := context.Background()
		coll := db.Collection(vvipsColl)

		set := bson.M{}
		if body.Name != nil {
			set["name"] = *body.Name
		}
		if body.Designation != nil {
			set["designation"] = *body.Designation
		}
		if body.Video != nil {
			set["video"] = body.Video
		}

		var vvip *model.VVIP
		if len(set) > 0 {
			vvip, err = repository.UpdateVVIP(ctx, coll, id, set)
			if err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					return c.Status(fiber.StatusNotFound).
						JSON(dto.ErrorResponse{Message: "vvip not found"})
				}
				return c.Status(fiber.StatusInternalServerError).
					JSON(dto.ErrorResponse{Message: err.Error()})
			}
		}

		if body.Play != nil {
			vvip, err = services.SetVVIPPlay(ctx, coll, id, *body.Play)
			if err != nil {
				if errors.Is(err, services.ErrVVIPNotFound) {
					return c.Status(fiber.StatusNotFound).
						JSON(dto.ErrorResponse{Message: "vvip not found"})
				}
				return c.Status(fiber.StatusInternalServerError).
					JSON(dto.ErrorResponse{Message: err.Error()})
			}
		}

		if vvip == nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "nothing to update"})
		}
		return c.JSON(vvip)
	}
}

func DeleteVVIPHandler(db *mongo.Database, store *storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid vvip id"})
		}

		ctx := context.Background()
		coll := db.Collection(vvipsColl)

		vvip, err := repository.FetchVVIPByID(ctx, coll, id)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		if err := repository.DeleteVVIP(ctx, coll, id); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		if store != nil && vvip != nil {
			store.Delete(ctx, vvip.Video.S3Key)
			if vvip.Video.Subtitle != nil {
				store.Delete(ctx, vvip.Video.Subtitle.S3Key)
			}
		}

		return c.JSON(dto.DeleteResponse{Success: true})
	}
}
