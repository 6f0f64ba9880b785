package deletepage

import (
	"errors"
	"net/http"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/page"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
	service "pagecms/internal/core/services/delete_page"
	"pagecms/internal/http/handlers/response"
	"strconv"

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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawPageID := chi.URLParam(r, "pageID")
	pageID, err := strconv.ParseInt(rawPageID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid page ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), service.Input{PageID: page.ID(pageID)})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, user.ErrPermissionDenied):
			response.RenderForbidden(rw)
		case errors.Is(err, page.ErrPageDoesNotExist):
			response.RenderNotFound(rw, "page does not exist")
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, struct{}{}, http.StatusOK)
}
