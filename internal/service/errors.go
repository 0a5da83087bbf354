package service

import "fmt"

// NotFoundError reports a request referencing an entity that does not exist
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// RuleError reports a request that violates a business rule, e.g. deleting
// a station that track segments still reference
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}
