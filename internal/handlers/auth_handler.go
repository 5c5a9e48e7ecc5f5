package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/auth"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/repositories"
)

type AuthHandler struct {
	accountRepo repositories.AccountRepository
	hasher      *auth.PasswordHasher
	issuer      *auth.TokenIssuer
	sessions    *auth.Middleware
}

func NewAuthHandler(
	accountRepo repositories.AccountRepository,
	hasher *auth.PasswordHasher,
	issuer *auth.TokenIssuer,
	sessions *auth.Middleware,
) *AuthHandler {
	return &AuthHandler{
		accountRepo: accountRepo,
		hasher:      hasher,
		issuer:      issuer,
		sessions:    sessions,
	}
}

// HandleSignup handles POST /auth/signup
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Role == "" || req.FullName == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role, full_name, email and password are required",
		})
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role must be candidate or recruiter",
		})
	}
	if !models.ValidGender(req.Gender) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid gender value",
		})
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	account := &models.Account{
		ID:           uuid.New(),
		Role:         role,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Gender:       req.Gender,
		Location:     req.Location,
	}

	if err := h.accountRepo.Create(account); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Email already registered",
			})
		}
		return fiber.ErrInternalServerError
	}

	return h.respondAuthenticated(c, account, fiber.StatusCreated)
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	account, err := h.accountRepo.FindByEmail(req.Email)
	if err != nil || !h.hasher.Compare(account.PasswordHash, req.Password) {
		// Same answer for unknown email and wrong password.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	return h.respondAuthenticated(c, account, fiber.StatusOK)
}

// HandleLogout handles POST /auth/logout
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if err := h.sessions.DestroySession(c); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) respondAuthenticated(c *fiber.Ctx, account *models.Account, status int) error {
	if err := h.sessions.SaveSession(c, account); err != nil {
		return fiber.ErrInternalServerError
	}

	token, err := h.issuer.Issue(account)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(status).JSON(models.LoginResponse{
		Token: token,
		User: models.SessionUser{
			ID:       account.ID.String(),
			Role:     string(account.Role),
			FullName: account.FullName,
			Email:    account.Email,
		},
	})
}
