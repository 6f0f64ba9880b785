package activateuser

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
	activateuser "pagecms/internal/core/services/activate_user"
	"pagecms/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[activateuser.Input, activateuser.Result]
}

func New(service services.Service[activateuser.Input, activateuser.Result]) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Token string `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(0, 256)),
	)
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

	_, err := h.service.Run(
		r.Context(),
		activateuser.Input{ValidationToken: user.TokenValue(input.Token)},
	)
	if errors.Is(err, user.ErrInvalidOrExpiredToken) {
		response.RenderError(rw, "invalid or expired token", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, struct{}{}, http.StatusOK)
}
