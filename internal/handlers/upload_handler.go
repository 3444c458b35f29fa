package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"oci_kiosk/dto"
	"oci_kiosk/internal/storage"
)

// UploadHandler godoc
// @Summary      Upload a media file
// @Description  Multipart upload to S3. Folder defaults from the MIME type; pass folder to override (e.g. subtitles).
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file    formData  file    true   "File to upload"
// @Param        folder  formData  string  false  "Bucket folder: videos, images, pdfs, subtitles or others"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/uploads [post]
func UploadHandler(store *storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "file is required"})
		}

		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		defer file.Close()

		mime := fileHeader.Header.Get(fiber.HeaderContentType)
		if mime == "" {
			mime = fiber.MIMEOctetStream
		}

		folder, ok := storage.ResolveFolder(c.FormValue("folder"), mime)
		if !ok {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "unknown folder"})
		}

		media, err := store.Upload(context.Background(), folder, fileHeader.Filename, mime, file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		return c.Status(fiber.StatusCreated).
			JSON(dto.UploadResponse{S3Key: media.S3Key, S3URL: media.S3URL})
	}
}
