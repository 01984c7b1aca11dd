package login

// loginInput берет тело как есть: huma не валидирует его, и любой
// испорченный JSON получает наш 400 в формате {success, message}.
type loginInput struct {
	RawBody []byte `contentType:"application/json"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" doc:"Driver login"`
	Secret     string `json:"secret" doc:"Driver password"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DriverName string `json:"driverName"`
}

// Failure возвращается как ошибка операции, huma пишет ее в тело ответа.
type Failure struct {
	status  int
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func fail(status int, message string) *Failure {
	return &Failure{status: status, Message: message}
}

func (f *Failure) Error() string  { return f.Message }
func (f *Failure) GetStatus() int { return f.status }

const (
	msgSuccess      = "Login successful!"
	msgMissing      = "Identifier and secret are required."
	msgNotFound     = "Driver not found."
	msgWrongSecret  = "Invalid credentials. Check your identifier and secret."
	msgServerFailed = "A server error occurred. Check the application log for details."
)
