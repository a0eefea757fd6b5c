package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNameRequired     = errors.New("name cannot be empty")
)
