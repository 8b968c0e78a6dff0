package note

import "errors"

var (
	ErrNotFound   = errors.New("note not found")
	ErrEmptyQuery = errors.New("search query is empty")
)
