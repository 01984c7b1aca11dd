package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"courierdesk/internal/app/server/api/http/problem"
	"courierdesk/internal/app/server/config"
	"courierdesk/internal/domain/driver"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	verifier   driver.Verifier
	db         config.DB
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(verifier driver.Verifier, db config.DB, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		verifier:   verifier,
		db:         db,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	op := h.loginOp()
	// Required: false, иначе пустое тело получит ответ huma, а не наш 400.
	op.RequestBody = &huma.RequestBody{
		Required: false,
		Content: map[string]*huma.MediaType{
			"application/json": {
				Schema: api.OpenAPI().Components.Schemas.Schema(reflect.TypeOf(LoginRequest{}), true, ""),
			},
		},
	}
	huma.Register(api, op, h.login)
}

// login отвечает 404 и 401 раздельно, как ожидает фронтенд.
func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	var req LoginRequest
	if err := json.Unmarshal(input.RawBody, &req); err != nil {
		h.log.Debug("malformed login body", "error", err)
		return nil, fail(http.StatusBadRequest, msgMissing)
	}

	outcome, err := h.verifier.Verify(ctx, req.Identifier, req.Secret)
	if errors.Is(err, driver.ErrInvalidInput) {
		return nil, fail(http.StatusBadRequest, msgMissing)
	}
	if err != nil {
		h.log.Error("login failed", "error", err)
		return nil, fail(http.StatusInternalServerError, problem.Describe(err, h.db, msgServerFailed))
	}

	switch outcome.Status {
	case driver.StatusNotFound:
		return nil, fail(http.StatusNotFound, msgNotFound)
	case driver.StatusWrongSecret:
		return nil, fail(http.StatusUnauthorized, msgWrongSecret)
	case driver.StatusSuccess:
		return &loginOutput{
			Body: LoginResponse{
				Success:    true,
				Message:    msgSuccess,
				DriverName: outcome.DriverName,
			},
		}, nil
	default:
		h.log.Error("unexpected verify outcome", "status", outcome.Status.String())
		return nil, fail(http.StatusInternalServerError, msgServerFailed)
	}
}
