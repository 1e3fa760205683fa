package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wayfarerhq/footprints/internal/repository"
)

// TripHandler bundles the trip repository for the trip endpoints.
type TripHandler struct {
	TripRepo *repository.TripRepo
}

// NewTripHandler constructs a TripHandler and panics if the repository is nil.
func NewTripHandler(tripRepo *repository.TripRepo) *TripHandler {
	if tripRepo == nil {
		panic("nil repository passed to NewTripHandler")
	}
	return &TripHandler{TripRepo: tripRepo}
}

type createTripRequest struct {
	Participants []int64 `json:"participants"`
	StartDay     string  `json:"start_day"`
	EndDay       string  `json:"end_day"`
	Locations    []int64 `json:"locations"`
}

// CreateTrip creates a trip with its participant and visited-location
// associations in one transaction. Unknown participant/location ids
// are silently dropped; an all-invalid participant set is a 400 and
// nothing is committed.
func (h *TripHandler) CreateTrip(c echo.Context) error {
	ctx := c.Request().Context()
	var req createTripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !validDay(req.StartDay) || !validDay(req.EndDay) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_day and end_day must be YYYY-MM-DD"})
	}
	if req.StartDay >= req.EndDay {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end day must be after start day"})
	}
	id, err := h.TripRepo.Create(ctx, req.Participants, req.StartDay, req.EndDay, req.Locations)
	if err != nil {
		if errors.Is(err, repository.ErrNoValidParticipants) || errors.Is(err, repository.ErrEndNotAfterStart) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"trip_id": id})
}

// ListTrips returns all trips newest-start first with comma-joined
// participant and location name lists.
func (h *TripHandler) ListTrips(c echo.Context) error {
	trips, err := h.TripRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": trips})
}

// DeleteTrip removes a trip; associations cascade away with it.
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	affected, err := h.TripRepo.Delete(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !affected {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

type searchTripsRequest struct {
	Participants []int64 `json:"participants"`
	StartAfter   string  `json:"start_after"`
	StartBefore  string  `json:"start_before"`
	EndAfter     string  `json:"end_after"`
	EndBefore    string  `json:"end_before"`
	Locations    []int64 `json:"locations"`
}

// SearchTrips returns trips containing ALL given participants (and,
// when given, all listed locations) within the supplied inclusive
// date bounds.
func (h *TripHandler) SearchTrips(c echo.Context) error {
	ctx := c.Request().Context()
	var req searchTripsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	for _, day := range []string{req.StartAfter, req.StartBefore, req.EndAfter, req.EndBefore} {
		if day != "" && !validDay(day) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date bounds must be YYYY-MM-DD"})
		}
	}
	results, err := h.TripRepo.Search(ctx, repository.TripSearchQuery{
		ParticipantIDs: req.Participants,
		StartAfter:     req.StartAfter,
		StartBefore:    req.StartBefore,
		EndAfter:       req.EndAfter,
		EndBefore:      req.EndBefore,
		LocationIDs:    req.Locations,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": results})
}
