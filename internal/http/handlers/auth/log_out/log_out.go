package logout

import (
	"errors"
	"net/http"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
	logout "pagecms/internal/core/services/log_out"
	"pagecms/internal/http/handlers/auth"
	"pagecms/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[logout.Input, logout.Result]
}

func New(service services.Service[logout.Input, logout.Result]) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}

	_, err := h.service.Run(r.Context(), logout.Input{Token: token})
	if errors.Is(err, user.ErrSessionDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, struct{}{}, http.StatusOK)
}
