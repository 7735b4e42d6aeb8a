package materials

import "errors"

var (
	ErrNotFound    = errors.New("material not found")
	ErrDuplicateID = errors.New("duplicate material id")
)
