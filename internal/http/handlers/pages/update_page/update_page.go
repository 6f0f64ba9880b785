package updatepage

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "pagecms/internal/core/domain/common"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/page"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
	service "pagecms/internal/core/services/update_page"
	"pagecms/internal/http/handlers/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Meta struct {
	Description string `json:"description"`
}

type Input struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Content     *string `json:"content"`
	Meta        *Meta   `json:"meta"`
	IsPublished *bool   `json:"is_published"`
}

type Result struct {
	Page response.Page `json:"page"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Length(1, 512)),
		validation.Field(&i.Slug, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawPageID := chi.URLParam(r, "pageID")
	pageID, err := strconv.ParseInt(rawPageID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid page ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{PageID: page.ID(pageID)}
	if input.Title != nil {
		serviceInput.Title = c.NewOptional(*input.Title, true)
	}
	if input.Slug != nil {
		serviceInput.Slug = c.NewOptional(*input.Slug, true)
	}
	if input.Content != nil {
		serviceInput.Content = c.NewOptional(*input.Content, true)
	}
	if input.Meta != nil {
		serviceInput.Meta = c.NewOptional(page.Meta{Description: input.Meta.Description}, true)
	}
	if input.IsPublished != nil {
		serviceInput.IsPublished = c.NewOptional(*input.IsPublished, true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, user.ErrPermissionDenied):
			response.RenderForbidden(rw)
		case errors.Is(err, page.ErrPageDoesNotExist):
			response.RenderNotFound(rw, "page does not exist")
		case errors.Is(err, page.ErrSlugAlreadyExists):
			response.RenderError(rw, "slug already exists", http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rp := response.Page{}
	rp.FromDomainPage(result.Page)
	response.Render(rw, Result{Page: rp}, http.StatusOK)
}
