package page

import (
	"context"
	c "pagecms/internal/core/domain/common"
	"pagecms/internal/core/domain/user"
	"time"
)

type CreateInput struct {
	Title       string
	Slug        string
	Content     string
	Meta        Meta
	IsPublished bool
	AuthorID    c.Optional[user.ID]
	CreatedAt   time.Time
}

type UpdateInput struct {
	ID                  ID
	DoTitleUpdate       bool
	Title               string
	DoSlugUpdate        bool
	Slug                string
	DoContentUpdate     bool
	Content             string
	DoMetaUpdate        bool
	Meta                Meta
	DoIsPublishedUpdate bool
	IsPublished         bool
	UpdatedAt           time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Page, error)
	GetByID(ctx context.Context, id ID) (Page, error)
	// GetPublishedBySlug is the public lookup, unpublished pages are
	// invisible through it.
	GetPublishedBySlug(ctx context.Context, slug string) (Page, error)
	List(ctx context.Context) ([]Page, error)
	ListPublished(ctx context.Context) ([]Page, error)
	SlugExists(ctx context.Context, slug string, excludeID c.Optional[ID]) (bool, error)
	Update(ctx context.Context, input UpdateInput) (Page, error)
	Delete(ctx context.Context, id ID) error
}
