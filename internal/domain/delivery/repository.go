package delivery

import "context"

type Repository interface {
	// ListOrders возвращает заказы с зашифрованными полями адреса.
	// driverID == nil - все заказы.
	ListOrders(ctx context.Context, driverID *int64) ([]Order, error)
}
