package health

// Input - у проверки нет параметров.
type Input struct{}

type Output struct {
	Body Response
}

// Response: status OK или DEGRADED, database up или down.
type Response struct {
	Status   string `json:"status" example:"OK" doc:"Health status of the service"`
	Database string `json:"database" example:"up" enum:"up,down" doc:"Result of a database ping"`
}

const (
	statusOK       = "OK"
	statusDegraded = "DEGRADED"
	databaseUp     = "up"
	databaseDown   = "down"
)
