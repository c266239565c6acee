package api

import (
	"errors"
	"time"

	"github.com/annavey/moodwell/internal/models"
	"github.com/annavey/moodwell/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	loginFailureLimit  = 10
	loginFailureWindow = 15 * time.Minute
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type sessionResponse struct {
	Token  string `json:"token"`
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var request credentialsRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := handler.auth.RegisterUser(request.Email, request.Password, request.Name)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrEmailAlreadyInUse):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return respondServiceError(c, err)
	}

	return handler.respondSession(c, &user, fiber.StatusCreated)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginFailureLimit, loginFailureWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "Too many login attempts, try again later")
	}

	var request credentialsRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := handler.auth.Authenticate(request.Email, request.Password)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginFailureWindow)
		return apiError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	handler.loginLimiter.reset(limiterKey)
	return handler.respondSession(c, &user, fiber.StatusOK)
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	})
}

func (handler *Handler) respondSession(c *fiber.Ctx, user *models.User, status int) error {
	token, err := handler.buildToken(user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	return c.Status(status).JSON(sessionResponse{
		Token:  token,
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
}
