package login

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID:   "driver-login",
		Method:        http.MethodPost,
		Path:          "/api/login",
		Summary:       "Driver login",
		Description:   "Checks driver credentials. Issues no token: the caller owns the session.",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusOK,
		Errors: []int{
			http.StatusBadRequest,
			http.StatusUnauthorized,
			http.StatusNotFound,
			http.StatusInternalServerError,
		},
		// тело разбирает сам обработчик
		SkipValidateBody: true,
		Middlewares:      h.middleware,
	}
}
