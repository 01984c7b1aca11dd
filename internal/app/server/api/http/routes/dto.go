package routes

import "courierdesk/internal/domain/delivery"

type routesInput struct {
	DriverID string `query:"driverId" doc:"Only orders assigned to this driver"`
}

type routesOutput struct {
	Body []delivery.Record
}

type failure struct {
	status  int
	Message string `json:"message"`
}

func fail(status int, message string) *failure {
	return &failure{status: status, Message: message}
}

func (f *failure) Error() string  { return f.Message }
func (f *failure) GetStatus() int { return f.status }

const (
	msgFetchFailed     = "An error occurred while fetching route data."
	msgInvalidDriverID = "driverId must be an integer."
)
