package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"oci_kiosk/database"
	"oci_kiosk/dto"
)

// LoginHandler godoc
// @Summary      Operator login
// @Description  Verify the CMS operator credentials and issue an HS256 token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginDTO  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func LoginHandler(cfg database.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if body.Username == "" || body.Password == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "username and password are required"})
		}

		if cfg.OperatorUser == "" || cfg.OperatorHash == "" || body.Username != cfg.OperatorUser {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "invalid credentials"})
		}
		if err := bcrypt.CompareHashAndPassword([]byte(cfg.OperatorHash), []byte(body.Password)); err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "invalid credentials"})
		}

		now := time.Now()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   body.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(12 * time.Hour)),
		})
		signed, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(dto.TokenResponse{Token: signed})
	}
}
