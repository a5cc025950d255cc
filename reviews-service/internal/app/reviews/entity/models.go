package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review представляет отзыв пользователя о точке продаж кофе.
// Нулевой ObjectID означает, что отзыв ещё не сохранён в хранилище.
type Review struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PosID         string             `json:"pos_id" bson:"pos_id"`         // UUID точки продаж из POS Service
	AuthorID      string             `json:"author_id" bson:"author_id"`   // UUID автора из Auth Service
	Content       string             `json:"content" bson:"content"`       // Текст отзыва
	ApprovalCount int                `json:"approval_count" bson:"approval_count"` // Количество одобрений от других пользователей
	Approved      bool               `json:"approved" bson:"approved"`     // Достигнут ли порог одобрения (производное поле)
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// User - пользователь, как его отдаёт Auth Service
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Pos - точка продаж, как её отдаёт POS Service
type Pos struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Campus string `json:"campus"`
	Type   string `json:"type"`
}

// Типы событий отзывов для Kafka
const (
	EventReviewCreated       = "REVIEW_CREATED"        // создан новый отзыв
	EventReviewApprovalAdded = "REVIEW_APPROVAL_ADDED" // добавлено одобрение
	EventReviewApproved      = "REVIEW_APPROVED"       // отзыв достиг порога одобрения
)

// ReviewEvent представляет событие отзыва для Kafka
type ReviewEvent struct {
	EventType     string    `json:"event_type"`
	ReviewID      string    `json:"review_id"`
	PosID         string    `json:"pos_id"`
	AuthorID      string    `json:"author_id"`
	ApprovalCount int       `json:"approval_count"`
	Approved      bool      `json:"approved"`
	Timestamp     time.Time `json:"timestamp"`
}
