package handler

import (
	"errors"
	"net/http"

	"campuscoffee/pos-service/internal/app/pos/entity"
	"campuscoffee/pos-service/internal/app/pos/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PosHandler обрабатывает HTTP запросы каталога точек продаж
type PosHandler struct {
	posService service.PosServiceInterface
	validator  *validator.Validate
}

// NewPosHandler создает новый обработчик точек продаж
func NewPosHandler(posService service.PosServiceInterface) *PosHandler {
	return &PosHandler{
		posService: posService,
		validator:  validator.New(),
	}
}

// CreatePos обрабатывает POST /pos
func (h *PosHandler) CreatePos(c *gin.Context) {
	var req entity.CreatePosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	pos, err := h.posService.CreatePos(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pos"})
		return
	}

	c.JSON(http.StatusCreated, pos)
}

// GetPos обрабатывает GET /pos/:pos_id.
// Эндпоинт используется Reviews Service для проверки существования точки
func (h *PosHandler) GetPos(c *gin.Context) {
	id, err := uuid.Parse(c.Param("pos_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid POS ID"})
		return
	}

	pos, err := h.posService.GetPos(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPosNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "POS not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get pos"})
		return
	}

	c.JSON(http.StatusOK, pos)
}

// GetAllPos обрабатывает GET /pos (список кешируется в Redis)
func (h *PosHandler) GetAllPos(c *gin.Context) {
	pos, err := h.posService.GetAllPos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get pos list"})
		return
	}

	response := entity.PosListResponse{
		Pos:   pos,
		Total: len(pos),
	}

	c.JSON(http.StatusOK, response)
}

// UpdatePos обрабатывает PUT /pos/:pos_id
func (h *PosHandler) UpdatePos(c *gin.Context) {
	id, err := uuid.Parse(c.Param("pos_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid POS ID"})
		return
	}

	var req entity.UpdatePosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	pos, err := h.posService.UpdatePos(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrPosNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "POS not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pos"})
		return
	}

	c.JSON(http.StatusOK, pos)
}

// DeletePos обрабатывает DELETE /pos/:pos_id
func (h *PosHandler) DeletePos(c *gin.Context) {
	id, err := uuid.Parse(c.Param("pos_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid POS ID"})
		return
	}

	if err := h.posService.DeletePos(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPosNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "POS not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pos"})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{
		Message: "POS deleted successfully",
	})
}

func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			return fieldError.Field() + " is " + fieldError.Tag()
		}
	}
	return "Validation failed"
}
