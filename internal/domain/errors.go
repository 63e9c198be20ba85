package domain

import "errors"

var (
	// ErrMealNotFound is returned when a meal id resolves to nothing.
	ErrMealNotFound = errors.New("meal not found")

	// ErrRuleNotFound signals an incomplete rule catalog: a weekday without a
	// day rule, or a date no season rule covers. A configuration error, never
	// retried.
	ErrRuleNotFound = errors.New("rule not found")

	// ErrAmbiguousSeason signals overlapping season rules for a date. Also a
	// configuration error.
	ErrAmbiguousSeason = errors.New("date matches more than one season rule")

	// ErrEmptyPool is returned when no meal satisfies a date's constraints.
	ErrEmptyPool = errors.New("no candidate meals for date")
)
