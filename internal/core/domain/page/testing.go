package page

import (
	"context"
	"fmt"
	c "pagecms/internal/core/domain/common"
	"sync"
)

type FakeRepository struct {
	Pages       []Page
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Pages: make([]Page, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (p Page, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not create page %q", input.Title)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, p := range r.Pages {
		if p.Slug == input.Slug {
			return p, ErrSlugAlreadyExists
		}
		maxID = p.ID
	}
	p = Page{
		ID:          maxID + 1,
		Title:       input.Title,
		Slug:        input.Slug,
		Content:     input.Content,
		Meta:        input.Meta,
		IsPublished: input.IsPublished,
		AuthorID:    input.AuthorID,
		CreatedAt:   input.CreatedAt,
	}
	r.Pages = append(r.Pages, p)
	return p, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (p Page, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.Pages {
		if p.ID == id {
			return p, nil
		}
	}
	return p, ErrPageDoesNotExist
}

func (r *FakeRepository) GetPublishedBySlug(ctx context.Context, slug string) (p Page, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.Pages {
		if p.Slug == slug && p.IsPublished {
			return p, nil
		}
	}
	return p, ErrPageDoesNotExist
}

func (r *FakeRepository) List(ctx context.Context) ([]Page, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	pages := make([]Page, len(r.Pages))
	copy(pages, r.Pages)
	return pages, nil
}

func (r *FakeRepository) ListPublished(ctx context.Context) ([]Page, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	pages := make([]Page, 0, len(r.Pages))
	for _, p := range r.Pages {
		if p.IsPublished {
			pages = append(pages, p)
		}
	}
	return pages, nil
}

func (r *FakeRepository) SlugExists(ctx context.Context, slug string, excludeID c.Optional[ID]) (bool, error) {
	if r.ReturnError {
		return false, fmt.Errorf("could not check slug %q", slug)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.Pages {
		if excludeID.IsPresent && p.ID == excludeID.Value {
			continue
		}
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (p Page, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not update page %d", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, p := range r.Pages {
		if p.ID != input.ID {
			continue
		}
		if input.DoTitleUpdate {
			r.Pages[ix].Title = input.Title
		}
		if input.DoSlugUpdate {
			r.Pages[ix].Slug = input.Slug
		}
		if input.DoContentUpdate {
			r.Pages[ix].Content = input.Content
		}
		if input.DoMetaUpdate {
			r.Pages[ix].Meta = input.Meta
		}
		if input.DoIsPublishedUpdate {
			r.Pages[ix].IsPublished = input.IsPublished
		}
		r.Pages[ix].UpdatedAt = c.NewOptional(input.UpdatedAt, true)
		return r.Pages[ix], nil
	}
	return p, ErrPageDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, p := range r.Pages {
		if p.ID == id {
			r.Pages = append(r.Pages[:ix], r.Pages[ix+1:]...)
			return nil
		}
	}
	return ErrPageDoesNotExist
}
