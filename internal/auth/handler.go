package auth

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/JuelHossain/import-goods-sub000/internal/user"
)

// resetTokenTTL bounds the password reset window.
const resetTokenTTL = 15 * time.Minute

type Handler struct {
	users  *user.Service
	secret string
}

func NewHandler(users *user.Service, secret string) *Handler {
	return &Handler{users: users, secret: secret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.signIn)
	app.Post("/api/v1/sign-up", h.signUp)
	app.Post("/api/v1/password-reset", h.requestPasswordReset)
	app.Post("/api/v1/password-reset/confirm", h.confirmPasswordReset)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-out", h.signOut)
	app.Get("/api/v1/profile", h.getProfile)
	app.Put("/api/v1/profile", h.updateProfile)
	app.Patch("/api/v1/profile", h.updateProfile)
	app.Get("/api/v1/wishlist", h.getWishlist)
	app.Post("/api/v1/wishlist/:productId<[0-9]+>", h.addToWishlist)
	app.Delete("/api/v1/wishlist/:productId<[0-9]+>", h.removeFromWishlist)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(credentialsRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	u, err := h.users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	signed, err := IssueToken(h.secret, u.ID, u.Email, u.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user.Sanitize(u),
		"token":   signed,
	})
}

func (h *Handler) signUp(c *fiber.Ctx) error {
	payload := new(signUpRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Email == "" || payload.Password == "" || payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email, password and name are required"})
	}

	created, err := h.users.Register(user.User{
		Email:    payload.Email,
		Password: payload.Password,
		Name:     payload.Name,
	})
	if err != nil {
		if err == user.ErrEmailExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(user.Sanitize(created))
}

// signOut is stateless on the server; the client discards its token. The
// endpoint exists so the frontend has a uniform auth surface.
func (h *Handler) signOut(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Signed out"})
}

type resetRequest struct {
	Email string `json:"email"`
}

// requestPasswordReset issues a short-lived single-purpose token. A real
// deployment would mail it; here it comes back in the response so the demo
// flow can be exercised end to end.
func (h *Handler) requestPasswordReset(c *fiber.Ctx) error {
	payload := new(resetRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	u, err := h.users.GetByEmail(payload.Email)
	if err != nil {
		// do not reveal which emails exist
		return c.JSON(fiber.Map{"message": "If the account exists, a reset link has been sent"})
	}

	claims := jwt.MapClaims{
		"user_id": u.ID,
		"purpose": "password_reset",
		"exp":     time.Now().Add(resetTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}
	return c.JSON(fiber.Map{
		"message":    "If the account exists, a reset link has been sent",
		"resetToken": signed,
	})
}

type confirmResetRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) confirmPasswordReset(c *fiber.Ctx) error {
	payload := new(confirmResetRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "new password is required"})
	}

	parsed, err := jwt.Parse(payload.Token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(h.secret), nil
	})
	if err != nil || !parsed.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired reset token"})
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != "password_reset" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired reset token"})
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired reset token"})
	}

	if err := h.users.ResetPassword(int(rawID), payload.NewPassword); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}
	return c.JSON(fiber.Map{"message": "Password updated"})
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	userID, err := UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	u, err := h.users.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}
	return c.JSON(user.Sanitize(u))
}

func (h *Handler) updateProfile(c *fiber.Ctx) error {
	userID, err := UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	patch := new(user.Patch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	updated, err := h.users.UpdateProfile(userID, *patch)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}
	return c.JSON(user.Sanitize(updated))
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	userID, err := UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	u, err := h.users.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}
	return c.JSON(fiber.Map{"wishlist": u.Wishlist})
}

func (h *Handler) addToWishlist(c *fiber.Ctx) error {
	return h.changeWishlist(c, h.users.AddToWishlist)
}

func (h *Handler) removeFromWishlist(c *fiber.Ctx) error {
	return h.changeWishlist(c, h.users.RemoveFromWishlist)
}

func (h *Handler) changeWishlist(c *fiber.Ctx, op func(id, productID int) (user.User, error)) error {
	userID, err := UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	u, err := op(userID, productID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}
	return c.JSON(fiber.Map{"wishlist": u.Wishlist})
}
