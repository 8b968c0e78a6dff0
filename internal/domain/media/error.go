package media

import "errors"

var (
	ErrNotFound        = errors.New("media not found")
	ErrNoteNotFound    = errors.New("note not found")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file exceeds size limit")
)
