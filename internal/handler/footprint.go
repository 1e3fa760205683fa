package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wayfarerhq/footprints/internal/repository"
)

// FootprintHandler bundles the repositories behind the footprint
// endpoints: entries themselves plus their comments and collections.
type FootprintHandler struct {
	FootprintRepo  *repository.FootprintRepo
	CommentRepo    *repository.CommentRepo
	CollectionRepo *repository.CollectionRepo
}

// NewFootprintHandler constructs a FootprintHandler and panics if any dependency is nil.
func NewFootprintHandler(footprintRepo *repository.FootprintRepo, commentRepo *repository.CommentRepo, collectionRepo *repository.CollectionRepo) *FootprintHandler {
	if footprintRepo == nil || commentRepo == nil || collectionRepo == nil {
		panic("nil repository passed to NewFootprintHandler")
	}
	return &FootprintHandler{
		FootprintRepo:  footprintRepo,
		CommentRepo:    commentRepo,
		CollectionRepo: collectionRepo,
	}
}

type createFootprintRequest struct {
	UserID     int64   `json:"user_id"`
	Title      string  `json:"title"`
	Content    *string `json:"content"`
	LocationID int64   `json:"location_id"`
}

// CreateFootprint records a journal entry. The server stamps the
// creation time and generates a placeholder image token.
func (h *FootprintHandler) CreateFootprint(c echo.Context) error {
	ctx := c.Request().Context()
	var req createFootprintRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.UserID == 0 || req.Title == "" || req.LocationID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id, title and location_id are required"})
	}
	id, err := h.FootprintRepo.Create(ctx, req.UserID, req.Title, req.Content, req.LocationID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"footprint_id": id})
}

// ListFootprints returns all footprints newest first with author and
// location fields joined.
func (h *FootprintHandler) ListFootprints(c echo.Context) error {
	items, err := h.FootprintRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type searchFootprintsRequest struct {
	Username      string   `json:"username"`
	LocationName  string   `json:"location_name"`
	LocationTypes []string `json:"location_types"`
	CreatedAfter  string   `json:"created_after"`
	CreatedBefore string   `json:"created_before"`
}

// SearchFootprints filters footprints by author substring, location
// name substring, location type set and inclusive creation range. A
// date-only upper bound is widened to the end of that day.
func (h *FootprintHandler) SearchFootprints(c echo.Context) error {
	ctx := c.Request().Context()
	var req searchFootprintsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	before := req.CreatedBefore
	if before != "" {
		before = widenDayBound(before)
	}
	items, err := h.FootprintRepo.Search(ctx, repository.FootprintSearchQuery{
		Username:      req.Username,
		LocationName:  req.LocationName,
		LocationTypes: req.LocationTypes,
		CreatedAfter:  req.CreatedAfter,
		CreatedBefore: before,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetFootprint returns a single footprint with its comments. When a
// ?user_id query parameter is present the response also carries that
// user's collected flag.
func (h *FootprintHandler) GetFootprint(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	detail, err := h.FootprintRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "footprint not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	comments, err := h.CommentRepo.ListByFootprint(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	resp := echo.Map{"footprint": detail, "comments": comments}
	if raw := c.QueryParam("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user_id"})
		}
		collected, err := h.CollectionRepo.IsCollected(ctx, userID, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		resp["collected"] = collected
	}
	return c.JSON(http.StatusOK, resp)
}

type updateFootprintRequest struct {
	Title      string  `json:"title"`
	Content    *string `json:"content"`
	LocationID int64   `json:"location_id"`
}

// UpdateFootprint rewrites a footprint's title, content and location.
func (h *FootprintHandler) UpdateFootprint(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateFootprintRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Title == "" || req.LocationID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and location_id are required"})
	}
	affected, err := h.FootprintRepo.Update(ctx, id, req.Title, req.Content, req.LocationID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !affected {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "footprint not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

type createCommentRequest struct {
	UserID   int64  `json:"user_id"`
	Content  string `json:"content"`
	ParentID *int64 `json:"parent_id"`
}

// AddComment leaves a comment on a footprint, optionally as a reply
// to an existing comment.
func (h *FootprintHandler) AddComment(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.UserID == 0 || req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id and content are required"})
	}
	commentID, err := h.CommentRepo.Create(ctx, id, req.UserID, req.Content, req.ParentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"comment_id": commentID})
}

type toggleCollectRequest struct {
	UserID int64 `json:"user_id"`
}

// ToggleCollect flips a user's collected state for a footprint and
// returns the resulting state.
func (h *FootprintHandler) ToggleCollect(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req toggleCollectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id is required"})
	}
	collected, err := h.CollectionRepo.Toggle(ctx, req.UserID, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"collected": collected})
}
