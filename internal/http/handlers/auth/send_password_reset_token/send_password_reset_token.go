package sendpasswordresettoken

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "pagecms/internal/core/domain/common"
	ratelimiter "pagecms/internal/core/domain/rate_limiter"
	"pagecms/internal/core/services"
	sendpasswordresettoken "pagecms/internal/core/services/send_password_reset_token"
	"pagecms/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service    services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	isTestMode bool
}

func New(
	service services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result],
	isTestMode bool,
) *Handler {
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email string `json:"email"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
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

	result, err := h.service.Run(
		r.Context(),
		sendpasswordresettoken.Input{Email: c.NewEmail(input.Email)},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	// Unknown emails get the same response as known ones.
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode && result.TokenCreated() {
		rw.Header().Set("x-test-password-reset-token", string(result.ResetToken))
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}
