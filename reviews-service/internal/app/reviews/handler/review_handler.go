package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"campuscoffee/reviews-service/internal/app/reviews/entity"
	"campuscoffee/reviews-service/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewServiceInterface interface {
	Upsert(ctx context.Context, review *entity.Review) (*entity.Review, error)
	Approve(ctx context.Context, review *entity.Review, approverID string) (*entity.Review, error)
	Filter(ctx context.Context, posID string, approved bool) ([]entity.Review, error)
	GetReview(ctx context.Context, reviewID string) (*entity.Review, error)
}

type ReviewHandler struct {
	reviewService ReviewServiceInterface
	validator     *validator.Validate
}

func NewReviewHandler(reviewService ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     validator.New(),
	}
}

// CreateReview создает новый отзыв. Автор берётся из JWT
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	userIDStr, ok := userID.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID"})
		return
	}

	var req entity.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	review := &entity.Review{
		PosID:    req.PosID,
		AuthorID: userIDStr,
		Content:  req.Content,
	}

	saved, err := h.reviewService.Upsert(c.Request.Context(), review)
	if err != nil {
		if errors.Is(err, service.ErrPosNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "POS not found"})
			return
		}
		if errors.Is(err, service.ErrAlreadyReviewed) {
			c.JSON(http.StatusConflict, gin.H{"error": "You already reviewed this POS"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// GetReview получает отзыв по ID
func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID := c.Param("review_id")
	if reviewID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Review ID is required"})
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get review"})
		return
	}

	c.JSON(http.StatusOK, review)
}

// ApproveReview засчитывает одобрение отзыва. Одобряющий берётся из JWT
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	userIDStr, ok := userID.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID"})
		return
	}

	reviewID := c.Param("review_id")
	objectID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	review, err := h.reviewService.Approve(c.Request.Context(), &entity.Review{ID: objectID}, userIDStr)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if errors.Is(err, service.ErrSelfApproval) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "You cannot approve your own review"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve review"})
		return
	}

	c.JSON(http.StatusOK, review)
}

// GetReviewsByPos получает отзывы точки продаж,
// отфильтрованные по статусу одобрения (?approved=true|false)
func (h *ReviewHandler) GetReviewsByPos(c *gin.Context) {
	posID := c.Param("pos_id")
	if posID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "POS ID is required"})
		return
	}

	approved, err := strconv.ParseBool(c.DefaultQuery("approved", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approved parameter"})
		return
	}

	reviews, err := h.reviewService.Filter(c.Request.Context(), posID, approved)
	if err != nil {
		if errors.Is(err, service.ErrPosNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "POS not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reviews"})
		return
	}

	response := entity.ReviewListResponse{
		Reviews: reviews,
		Total:   len(reviews),
	}

	c.JSON(http.StatusOK, response)
}

func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			return fieldError.Field() + " is " + fieldError.Tag()
		}
	}
	return "Validation failed"
}
