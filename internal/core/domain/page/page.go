package page

import (
	c "pagecms/internal/core/domain/common"
	"pagecms/internal/core/domain/user"
	"time"
)

type ID int64

type Meta struct {
	Description string `json:"description"`
}

type Page struct {
	ID          ID
	Title       string
	Slug        string
	Content     string
	Meta        Meta
	IsPublished bool
	AuthorID    c.Optional[user.ID]
	CreatedAt   time.Time
	UpdatedAt   c.Optional[time.Time]
}
