package getpagebyslug

import (
	"errors"
	"net/http"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/page"
	"pagecms/internal/core/services"
	service "pagecms/internal/core/services/get_page_by_slug"
	"pagecms/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Page response.Page `json:"page"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		response.RenderNotFound(rw, "page does not exist")
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Slug: slug})
	if errors.Is(err, page.ErrPageDoesNotExist) {
		response.RenderNotFound(rw, "page does not exist")
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	rp := response.Page{}
	rp.FromDomainPage(result.Page)
	response.Render(rw, Result{Page: rp}, http.StatusOK)
}
