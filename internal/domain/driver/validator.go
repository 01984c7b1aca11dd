package driver

import "fmt"

// Validator проверяет входные данные логина до обращения к БД.
type Validator interface {
	ValidateLogin(login, secret string) error
}

type RequiredValidator struct{}

func NewRequiredValidator() *RequiredValidator {
	return &RequiredValidator{}
}

// ValidateLogin требует непустые идентификатор и пароль. Строка из пробелов
// считается заполненной: такой логин просто не найдется в tb_motorista.
func (v *RequiredValidator) ValidateLogin(login, secret string) error {
	if login == "" {
		return fmt.Errorf("%w: identifier is empty", ErrInvalidInput)
	}
	if secret == "" {
		return fmt.Errorf("%w: secret is empty", ErrInvalidInput)
	}
	return nil
}
