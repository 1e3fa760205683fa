package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wayfarerhq/footprints/internal/repository"
)

// LocationHandler bundles the location repository for the location endpoints.
type LocationHandler struct {
	LocationRepo *repository.LocationRepo
}

// NewLocationHandler constructs a LocationHandler and panics if the repository is nil.
func NewLocationHandler(locationRepo *repository.LocationRepo) *LocationHandler {
	if locationRepo == nil {
		panic("nil repository passed to NewLocationHandler")
	}
	return &LocationHandler{LocationRepo: locationRepo}
}

type createLocationRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
	Type    string  `json:"type"`
}

// CreateLocation registers a location. An invalid type is a 400
// before any write; a duplicate name is a 409.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	ctx := c.Request().Context()
	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	id, err := h.LocationRepo.Create(ctx, req.Name, req.Address, req.Type)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidLocationType) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid location type"})
		}
		var ce *repository.ConflictError
		if errors.As(err, &ce) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error":      "location name occupied",
				"constraint": ce.Constraint,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"location_id": id})
}

// ListLocations returns every location's id and name.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	items, err := h.LocationRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
