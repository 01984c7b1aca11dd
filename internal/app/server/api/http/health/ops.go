package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID:   "health-check",
		Method:        http.MethodGet,
		Path:          "/api/v1/health",
		Summary:       "Service and database health",
		Description:   "Pings the database and reports its reachability. Always answers 200; a failed ping shows as database \"down\".",
		Tags:          []string{"health"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}
