package entity

import (
	"time"

	"github.com/google/uuid"
)

// Типы точек продаж кофе на кампусе
const (
	PosTypeCafe           = "cafe"
	PosTypeVendingMachine = "vending_machine"
	PosTypeBakery         = "bakery"
	PosTypeRestaurant     = "restaurant"
)

// Pos представляет точку продаж кофе (кафе, автомат, пекарня, ресторан)
type Pos struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Campus      string    `json:"campus"` // Кампус, на котором расположена точка
	Type        string    `json:"type"`   // cafe, vending_machine, bakery, restaurant
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName задает имя таблицы явно, т.к. "pos" не плюрализуется
func (Pos) TableName() string {
	return "pos"
}

// Типы событий точек продаж для Kafka
const (
	EventPosCreated = "POS_CREATED"
	EventPosUpdated = "POS_UPDATED"
	EventPosDeleted = "POS_DELETED"
)

// PosEvent представляет событие изменения точки продаж для Kafka
type PosEvent struct {
	EventType string    `json:"event_type"`
	PosID     uuid.UUID `json:"pos_id"`
	Name      string    `json:"name"`
	Campus    string    `json:"campus"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}
