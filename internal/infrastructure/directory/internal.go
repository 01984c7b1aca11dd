package directory

import (
	"context"
	"fmt"
	"net/http"

	"courierdesk/internal/domain/address"
)

var _ address.Lookup = (*Internal)(nil)

// Internal ходит во внутренний сервис адресов: GET {base}/api/cep/{code}.
type Internal struct {
	client  *http.Client
	baseURL string
}

type internalResponse struct {
	Success bool             `json:"success"`
	Data    *address.Address `json:"data"`
	Message string           `json:"message"`
}

func NewInternal(client *http.Client, baseURL string) *Internal {
	return &Internal{client: client, baseURL: baseURL}
}

func (c *Internal) Name() string { return "internal" }

func (c *Internal) Lookup(ctx context.Context, postalCode string) (address.Address, error) {
	var body internalResponse
	if _, err := getJSON(ctx, c.client, joinURL(c.baseURL, "api", "cep", postalCode), &body); err != nil {
		return address.Address{}, err
	}

	if !body.Success || body.Data == nil || body.Data.IsZero() {
		return address.Address{}, fmt.Errorf("%w: %s", address.ErrNotFound, body.Message)
	}

	return *body.Data, nil
}
