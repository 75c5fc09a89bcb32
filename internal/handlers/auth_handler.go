package handlers

import (
	"errors"

	"github.com/garagesale/backend/internal/dto"
	"github.com/garagesale/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
		}
		return internalError(c, "login failed", err)
	}

	return c.JSON(dto.TokenResponse{Token: token})
}

// CreateSuperAdmin is open but single-use: it refuses once any super
// admin exists, so it only works on a fresh deployment.
func (h *AuthHandler) CreateSuperAdmin(c *fiber.Ctx) error {
	req, err := parseCreateUser(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	if err := h.authService.CreateSuperAdmin(req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrSuperAdminExists) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "super admin already exists"})
		}
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "username already taken"})
		}
		return internalError(c, "failed to create super admin", err)
	}

	return c.JSON(dto.MessageResponse{Message: "Super admin created successfully"})
}

func (h *AuthHandler) CreateAdmin(c *fiber.Ctx) error {
	req, err := parseCreateUser(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	if err := h.authService.CreateAdmin(req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "username already taken"})
		}
		return internalError(c, "failed to create admin", err)
	}

	return c.JSON(dto.MessageResponse{Message: "Admin created successfully"})
}

func parseCreateUser(c *fiber.Ctx) (*dto.CreateUserRequest, error) {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.New("invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return nil, errors.New("username and password are required")
	}
	return &req, nil
}
