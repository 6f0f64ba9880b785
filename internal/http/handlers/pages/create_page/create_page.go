package createpage

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
	createpage "pagecms/internal/core/services/create_page"
	"pagecms/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createpage.Input, createpage.Result]
}

func New(service services.Service[createpage.Input, createpage.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Meta struct {
	Description string `json:"description"`
}

type Input struct {
	Title       string  `json:"title"`
	Slug        *string `json:"slug"`
	Content     string  `json:"content"`
	Meta        Meta    `json:"meta"`
	IsPublished bool    `json:"is_published"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Slug, validation.Length(0, 512)),
		validation.Field(&i.Meta, validation.By(func(value interface{}) error {
			meta := value.(Meta)
			return validation.Validate(meta.Description, validation.Length(0, 1024))
		})),
	)
}

type Result struct {
	Page response.Page `json:"page"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := createpage.Input{
		Title:       input.Title,
		Content:     input.Content,
		Meta:        page.Meta{Description: input.Meta.Description},
		IsPublished: input.IsPublished,
	}
	if input.Slug != nil {
		serviceInput.Slug = c.NewOptional(*input.Slug, true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if errors.Is(err, user.ErrPermissionDenied) {
		response.RenderForbidden(rw)
		return
	}
	if errors.Is(err, page.ErrSlugAlreadyExists) {
		response.RenderError(rw, "slug already exists", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	rp := response.Page{}
	rp.FromDomainPage(result.Page)
	response.Render(rw, Result{Page: rp}, http.StatusCreated)
}
