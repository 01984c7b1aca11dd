package routes

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"courierdesk/internal/app/server/api/http/problem"
	"courierdesk/internal/app/server/config"
	"courierdesk/internal/domain/delivery"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    delivery.Servicer
	db         config.DB
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service delivery.Servicer, db config.DB, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		db:         db,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) list(ctx context.Context, input *routesInput) (*routesOutput, error) {
	driverID, err := parseDriverID(input.DriverID)
	if err != nil {
		return nil, fail(http.StatusBadRequest, msgInvalidDriverID)
	}

	records, err := h.service.List(ctx, driverID)
	if err != nil {
		h.log.Error("failed to list routes", "error", err)
		return nil, fail(http.StatusInternalServerError, problem.Describe(err, h.db, msgFetchFailed))
	}
	if records == nil {
		records = []delivery.Record{}
	}

	return &routesOutput{Body: records}, nil
}

// parseDriverID: пустое значение означает "все заказы".
func parseDriverID(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
