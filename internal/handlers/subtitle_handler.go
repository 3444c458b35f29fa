package handlers

import (
	"context"
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"oci_kiosk/dto"
	"oci_kiosk/internal/storage"
)

// GetSubtitleHandler streams a subtitle track from the bucket. Keys are
// stored under subtitles/ but referenced without the prefix in video markup.
func GetSubtitleHandler(store *storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := url.PathUnescape(c.Params("key"))
		if err != nil || key == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid subtitle key"})
		}

		body, contentType, err := store.Get(context.Background(), "subtitles/"+key)
		if err != nil {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "subtitle not found"})
		}
		defer body.Close()

		data, err := io.ReadAll(body)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		if contentType == "" {
			contentType = "text/vtt"
		}
		c.Set(fiber.HeaderContentType, contentType)
		return c.Send(data)
	}
}
