package directory

import (
	"bytes"
	"context"
	"net/http"

	"courierdesk/internal/domain/address"
)

var _ address.Lookup = (*Public)(nil)

// Public - запасной справочник в формате ViaCEP: GET {base}/ws/{code}/json/.
type Public struct {
	client  *http.Client
	baseURL string
}

// errorFlag принимает и "erro": true, и "erro": "true".
type errorFlag bool

func (f *errorFlag) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	*f = errorFlag(bytes.Equal(b, []byte("true")))
	return nil
}

type publicResponse struct {
	Erro       errorFlag `json:"erro"`
	Logradouro string    `json:"logradouro"`
	Bairro     string    `json:"bairro"`
	Localidade string    `json:"localidade"`
	UF         string    `json:"uf"`
}

func NewPublic(client *http.Client, baseURL string) *Public {
	return &Public{client: client, baseURL: baseURL}
}

func (c *Public) Name() string { return "public" }

func (c *Public) Lookup(ctx context.Context, postalCode string) (address.Address, error) {
	var body publicResponse
	if _, err := getJSON(ctx, c.client, joinURL(c.baseURL, "ws", postalCode, "json")+"/", &body); err != nil {
		return address.Address{}, err
	}

	// ViaCEP отвечает 200 с {"erro": true} на несуществующий CEP.
	if body.Erro {
		return address.Address{}, address.ErrNotFound
	}

	addr := address.Address{
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		Region:       body.UF,
	}
	if addr.IsZero() {
		return address.Address{}, address.ErrNotFound
	}

	return addr, nil
}
