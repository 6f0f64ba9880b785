package page

import "errors"

var (
	ErrPageDoesNotExist  = errors.New("page does not exist")
	ErrSlugAlreadyExists = errors.New("slug already exists")
)
