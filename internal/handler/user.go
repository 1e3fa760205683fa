package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wayfarerhq/footprints/internal/repository"
)

// UserHandler bundles the repositories backing the user endpoints.
type UserHandler struct {
	UserRepo       *repository.UserRepo
	CollectionRepo *repository.CollectionRepo
}

// NewUserHandler constructs a UserHandler and panics if any dependency is nil.
func NewUserHandler(userRepo *repository.UserRepo, collectionRepo *repository.CollectionRepo) *UserHandler {
	if userRepo == nil || collectionRepo == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{UserRepo: userRepo, CollectionRepo: collectionRepo}
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateUser registers a new user. A taken username or email yields
// 409 with the violated constraint.
func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Username == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and email are required"})
	}
	id, err := h.UserRepo.Create(ctx, req.Username, req.Email)
	if err != nil {
		var ce *repository.ConflictError
		if errors.As(err, &ce) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error":      "username or email occupied",
				"constraint": ce.Constraint,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"user_id": id})
}

// ListUsers returns all users in insertion order.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.UserRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": users})
}

// DeleteUser removes a user. Unknown ids yield 404; the affected
// state comes from the row count, never from an error.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	affected, err := h.UserRepo.Delete(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !affected {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCollections returns the footprints the user has collected.
func (h *UserHandler) ListCollections(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	items, err := h.CollectionRepo.ListByUser(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
