// Package problem превращает ошибки инфраструктуры в понятные сообщения,
// которые фронтенд показывает при 500.
package problem

import (
	"errors"
	"fmt"

	"courierdesk/internal/app/server/config"
	"courierdesk/internal/infrastructure/storage"
)

// Describe называет настройку, из-за которой упал запрос, или возвращает
// fallback для неклассифицированной ошибки.
func Describe(err error, db config.DB, fallback string) string {
	var se *storage.Error
	if !errors.As(err, &se) {
		return fallback
	}

	switch se.Kind {
	case storage.KindUnreachable:
		return fmt.Sprintf("Could not connect to the database server at '%s'. Check DB_HOST and DB_PORT.", db.Host)
	case storage.KindAccessDenied:
		return fmt.Sprintf("Access denied for user '%s'. Check the database user and password.", db.User)
	case storage.KindDatabaseMissing:
		return fmt.Sprintf("Database '%s' was not found on the host. Check DB_DATABASE.", db.Name)
	case storage.KindSchemaMismatch:
		return fmt.Sprintf("Column or table not found. Check the SQL query. Details: %v", se.Err)
	default:
		return fallback
	}
}
