package routes

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "list-routes",
		Method:      http.MethodGet,
		Path:        "/api/routes",
		Summary:     "Delivery records",
		Description: "Returns one record per order with a decrypted, resolved address.",
		Tags:        []string{"routes"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
		Middlewares: h.middleware,
	}
}
