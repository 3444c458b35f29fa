package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"oci_kiosk/dto"
	"oci_kiosk/internal/repository"
)

const homesColl = "homes"

// GetHomeHandler godoc
// @Summary      Get the home video
// @Tags         home
// @Produce      json
// @Success      200  {object}  dto.HomeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/home [get]
func GetHomeHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		home, err := repository.FetchHome(context.Background(), db.Collection(homesColl))
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(dto.HomeResponse{OK: false})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(dto.HomeResponse{OK: home.Video != nil, Video: home.Video, Subtitle: home.Subtitle})
	}
}

func UpdateHomeHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UpdateHomeDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if body.Video == nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "video is required"})
		}

		home, err := repository.UpsertHome(context.Background(), db.Collection(homesColl), body.Video, body.Subtitle)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(dto.HomeResponse{OK: true, Video: home.Video, Subtitle: home.Subtitle})
	}
}
