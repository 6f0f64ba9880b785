package response

import (
	"pagecms/internal/core/domain/page"
	"time"
)

type PageMeta struct {
	Description string `json:"description"`
}

type Page struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Meta        PageMeta  `json:"meta"`
	IsPublished bool      `json:"is_published"`
	AuthorID    *int64    `json:"author_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Page) FromDomainPage(dp page.Page) {
	p.ID = int64(dp.ID)
	p.Title = dp.Title
	p.Slug = dp.Slug
	p.Content = dp.Content
	p.Meta = PageMeta{Description: dp.Meta.Description}
	p.IsPublished = dp.IsPublished
	if dp.AuthorID.IsPresent {
		authorID := int64(dp.AuthorID.Value)
		p.AuthorID = &authorID
	}
	p.CreatedAt = dp.CreatedAt
}

type Pages struct {
	Pages []Page `json:"pages"`
}

func (p *Pages) FromDomainPages(dps []page.Page) {
	pages := make([]Page, 0, len(dps))
	for _, dp := range dps {
		rp := Page{}
		rp.FromDomainPage(dp)
		pages = append(pages, rp)
	}
	p.Pages = pages
}
