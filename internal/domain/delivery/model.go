package delivery

import "time"

const (
	StatusPending = "pending"

	AddressUnavailable = "address unavailable"
	AddressError       = "address processing error"
	TimeUnavailable    = "N/A"
)

// Order - строка tb_encomenda с полями адреса из tb_endereco (могут быть пустыми).
type Order struct {
	ID                int64
	Number            string
	CustomerName      string
	CreatedAt         *time.Time
	PostalCodeCipher  string
	HouseNumberCipher string
	ComplementCipher  string
	// Unreadable: строку не удалось прочитать целиком, известен только ID.
	Unreadable bool
}

// Record - элемент ответа /api/routes, по одному на заказ.
type Record struct {
	ID          int64  `json:"id" doc:"Order id"`
	Title       string `json:"title" example:"Order #1001"`
	Description string `json:"description" example:"Customer: Maria"`
	Address     string `json:"address" example:"Rua A, Nº 12, Centro, São Paulo - SP"`
	Status      string `json:"status" example:"pending"`
	Time        string `json:"time" example:"18/10/2026 14:05"`
	Read        bool   `json:"read"`
}
