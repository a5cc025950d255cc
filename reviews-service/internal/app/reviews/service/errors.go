package service

import "errors"

// Две категории ошибок бизнес-логики для обработки в handlers:
// отсутствие сущности (review/user/pos) и нарушение бизнес-правила.
var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrPosNotFound     = errors.New("pos not found")
	ErrAlreadyReviewed = errors.New("author already reviewed this pos")
	ErrSelfApproval    = errors.New("author cannot approve own review")
)
