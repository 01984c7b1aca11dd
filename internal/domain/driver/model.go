package driver

// Credential - запись из tb_motorista, нужная для входа.
type Credential struct {
	Login       string
	Secret      Secret
	DisplayName string
}

type Status int

const (
	StatusNotFound Status = iota + 1
	StatusWrongSecret
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusNotFound:
		return "not_found"
	case StatusWrongSecret:
		return "wrong_secret"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Outcome - результат проверки. DriverName заполнен только при StatusSuccess.
type Outcome struct {
	Status     Status
	DriverName string
}
