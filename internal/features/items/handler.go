package items

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusfound/api/internal/pkg/logger"
	"github.com/campusfound/api/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary Post a lost or found item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateItemRequest true "Item details"
// @Success 201 {object} response.SuccessResponse{data=Item}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /items [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateItem(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item := &Item{
		Type:          req.Type,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		Date:          req.Date,
		ImageURL:      req.ImageURL,
		Labels:        req.Labels,
		ContactNumber: req.ContactNumber,
		OwnerID:       c.GetString("userID"),
	}

	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		response.DatabaseError(c, "Failed to create item")
		return
	}

	response.Created(c, item)
}

// List godoc
// @Summary Browse items
// @Description Returns items newest first, optionally filtered by type and location
// @Tags items
// @Produce json
// @Param type query string false "Filter by type (lost or found)"
// @Param location query string false "Filter by location substring"
// @Param limit query int false "Maximum results (default 50, max 100)"
// @Success 200 {object} response.PaginatedResponse{data=[]Item}
// @Failure 400 {object} response.ErrorResponse
// @Router /items [get]
func (h *Handler) List(c *gin.Context) {
	itemType := c.Query("type")
	if itemType != "" && itemType != "lost" && itemType != "found" {
		response.BadRequest(c, "Type must be either lost or found")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(c, "Limit must be a positive integer")
			return
		}
		limit = parsed
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	location := c.Query("location")

	items, err := h.repo.List(c.Request.Context(), itemType, location, limit)
	if err != nil {
		response.DatabaseError(c, "Failed to fetch items")
		return
	}

	total, err := h.repo.CountByType(c.Request.Context(), itemType)
	if err != nil {
		total = int64(len(items))
	}

	response.Paginated(c, items, total, limit)
}

// Get godoc
// @Summary Get a single item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.SuccessResponse{data=Item}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /items/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	item, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}
	if item == nil {
		response.NotFound(c, "Item not found")
		return
	}

	response.Success(c, item)
}

// Delete godoc
// @Summary Delete an item you posted
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /items/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	userID := c.GetString("userID")

	deleted, err := h.repo.Delete(c.Request.Context(), id, userID)
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if deleted == 0 {
		// Distinguish an item that never existed from one owned by someone else
		item, err := h.repo.GetByID(c.Request.Context(), id)
		if err != nil || item == nil {
			response.NotFound(c, "Item not found")
			return
		}
		response.Forbidden(c, "You can only delete your own items")
		return
	}

	response.Success(c, map[string]string{"message": "Item deleted"})
}

// Matches godoc
// @Summary Suggest likely matches for an item
// @Description Ranks items of the opposite type by label overlap
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.SuccessResponse{data=[]MatchCandidate}
// @Failure 404 {object} response.ErrorResponse
// @Router /items/{id}/matches [get]
func (h *Handler) Matches(c *gin.Context) {
	item, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}
	if item == nil {
		response.NotFound(c, "Item not found")
		return
	}

	if len(item.Labels) == 0 {
		response.Success(c, []MatchCandidate{})
		return
	}

	candidates, err := h.repo.ListOppositeType(c.Request.Context(), item.Type, item.ID)
	if err != nil {
		// Matching is a convenience, degrade to no suggestions
		logger.Warn("failed to fetch match candidates for item %s: %v", item.ID.Hex(), err)
		response.Success(c, []MatchCandidate{})
		return
	}

	response.Success(c, ScoreMatches(item.Labels, item.ID, candidates))
}
