package repository

import "errors"

var (
	ErrInvalidMealData       = errors.New("invalid meal data")
	ErrInvalidRuleData       = errors.New("invalid rule data")
	ErrInvalidAssignmentData = errors.New("invalid assignment data")
)
