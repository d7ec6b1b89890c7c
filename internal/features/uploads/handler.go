package uploads

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/campusfound/api/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// UploadImage godoc
// @Summary Upload an item photo
// @Description Stores the image privately, returns a time-limited URL plus AI-suggested labels and description
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file (under 10MB)"
// @Success 200 {object} response.SuccessResponse{data=Result}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /uploads/image [post]
func (h *Handler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "An image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	userID := c.GetString("userID")

	result, err := h.service.Process(c.Request.Context(), userID, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidType), errors.Is(err, ErrTooLarge):
			response.BadRequest(c, err.Error())
		case errors.Is(err, ErrInFlight):
			response.Conflict(c, err.Error())
		default:
			response.InternalServerError(c, "Failed to store image")
		}
		return
	}

	response.Success(c, result)
}
