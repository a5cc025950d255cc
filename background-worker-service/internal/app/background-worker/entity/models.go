package entity

import "time"

// Типы событий отзывов, которые публикует Reviews Service
const (
	EventReviewCreated       = "REVIEW_CREATED"
	EventReviewApprovalAdded = "REVIEW_APPROVAL_ADDED"
	EventReviewApproved      = "REVIEW_APPROVED"
)

// ReviewEvent - событие отзыва из топика review_events
type ReviewEvent struct {
	EventType     string    `json:"event_type"`
	ReviewID      string    `json:"review_id"`
	PosID         string    `json:"pos_id"`
	AuthorID      string    `json:"author_id"`
	ApprovalCount int       `json:"approval_count"`
	Approved      bool      `json:"approved"`
	Timestamp     time.Time `json:"timestamp"`
}

// PosReviewStats - агрегированная статистика отзывов по точке продаж.
// Инкрементально обновляется из событий Kafka, ночью сверяется
// с первичными данными Reviews Service.
type PosReviewStats struct {
	PosID           string    `json:"pos_id" gorm:"column:pos_id;primaryKey"`
	TotalReviews    int       `json:"total_reviews" gorm:"column:total_reviews"`
	ApprovedReviews int       `json:"approved_reviews" gorm:"column:approved_reviews"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName задаёт имя таблицы явно
func (PosReviewStats) TableName() string {
	return "pos_review_stats"
}
