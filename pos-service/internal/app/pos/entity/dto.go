package entity

type CreatePosRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Campus      string `json:"campus" validate:"required,min=2,max=100"`
	Type        string `json:"type" validate:"required,oneof=cafe vending_machine bakery restaurant"`
	Address     string `json:"address" validate:"required,min=5,max=300"`
}

type UpdatePosRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Campus      string `json:"campus" validate:"omitempty,min=2,max=100"`
	Type        string `json:"type" validate:"omitempty,oneof=cafe vending_machine bakery restaurant"`
	Address     string `json:"address" validate:"omitempty,min=5,max=300"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type PosListResponse struct {
	Pos   []Pos `json:"pos"`
	Total int   `json:"total"`
}
