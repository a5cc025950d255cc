package entity

// CreateReviewRequest - запрос на создание отзыва
type CreateReviewRequest struct {
	PosID   string `json:"pos_id" validate:"required,uuid"`
	Content string `json:"content" validate:"required,min=10,max=2000"`
}

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ReviewListResponse - ответ со списком отзывов
type ReviewListResponse struct {
	Reviews []Review `json:"reviews"`
	Total   int      `json:"total"`
}
