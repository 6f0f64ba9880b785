package listpages

import (
	"net/http"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/services"
	service "pagecms/internal/core/services/list_pages"
	"pagecms/internal/http/handlers/response"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{PublishedOnly: true})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	pages := response.Pages{}
	pages.FromDomainPages(result.Pages)
	response.Render(rw, pages, http.StatusOK)
}
