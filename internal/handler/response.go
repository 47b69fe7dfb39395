package handler

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/Maspur102/elokalfa/internal/middleware"
	"github.com/Maspur102/elokalfa/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrInsufficientPayment),
		errors.Is(err, service.ErrProofRequired),
		errors.Is(err, service.ErrProofType),
		errors.Is(err, service.ErrFileType),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrCannotDeleteSelf):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrTransactionNotFound),
		errors.Is(err, service.ErrExpenseNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRoleNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrCategoryInUse),
		errors.Is(err, service.ErrCodeExists),
		errors.Is(err, service.ErrUsernameExists):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserInactive),
		errors.Is(err, service.ErrSessionReplaced):
		return fiber.StatusUnauthorized
	}
	return fiber.StatusInternalServerError
}

// fail writes {"error": message}; unexpected errors carry the message as details.
func fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(fiber.Map{"error": "Internal server error", "details": err.Error()})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// actorOf returns the authenticated user; protected routes always have one.
func actorOf(c *fiber.Ctx) service.Actor {
	actor, _ := middleware.ActorFrom(c)
	return actor
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("Invalid ID format")
	}
	return uint(id), nil
}

// optionalFile returns the uploaded file for field, or nil when none was sent.
func optionalFile(c *fiber.Ctx, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if fh.Filename == "" || fh.Size == 0 {
		return nil, nil
	}
	return fh, nil
}
