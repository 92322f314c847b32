package admin

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberbook/booking-api/db"
	"github.com/barberbook/booking-api/models"
	"github.com/barberbook/booking-api/quota"
	"github.com/barberbook/booking-api/utils"
)

// LoginQuota is wired in main before the routes are served.
var LoginQuota *quota.LoginThrottle

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an admin and issues a 24h JWT carrying the
// admin's barber scope. Failed attempts are counted in Redis so the
// lockout holds across server instances.
func Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Username and password are required",
		})
	}

	blocked, retryAfter, err := LoginQuota.Blocked(c.Context(), req.Username)
	if err != nil {
		log.Printf("Login throttle check failed: %v", err)
	} else if blocked {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"message":           "Too many failed logins",
			"retryAfterSeconds": int(retryAfter.Seconds()),
		})
	}

	var user models.AdminUser
	err = db.DB.Where("LOWER(username) = ?", strings.ToLower(req.Username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil &&
		bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil) {
		if err := LoginQuota.RecordFailure(c.Context(), req.Username); err != nil {
			log.Printf("Login throttle record failed: %v", err)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid credentials",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Service temporarily unavailable",
			Error:   err.Error(),
		})
	}

	if err := LoginQuota.Reset(c.Context(), req.Username); err != nil {
		log.Printf("Login throttle reset failed: %v", err)
	}

	claims := jwt.MapClaims{
		"userID":   user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	if user.BarberID != nil {
		claims["barberID"] = *user.BarberID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to sign token",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"token":     signed,
		"username":  user.Username,
		"barber_id": user.BarberID,
	})
}
