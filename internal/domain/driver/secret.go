package driver

// Secret - сохраненный пароль в одном из двух видов. Набор закрыт:
// реализуют только HashedSecret и PlaintextSecret.
type Secret interface {
	isSecret()
}

// HashedSecret - bcrypt хэш вида "$2b$10$...".
type HashedSecret struct {
	Digest []byte
}

// PlaintextSecret - старый пароль, сохраненный как есть.
type PlaintextSecret struct {
	Value []byte
}

func (HashedSecret) isSecret()    {}
func (PlaintextSecret) isSecret() {}

const bcryptPrefixLen = 4

// ParseSecret определяет вид пароля по префиксу bcrypt ($2a$, $2b$, $2x$, $2y$).
// Открытый пароль, случайно начинающийся с такого префикса, считается хэшем
// и никогда не совпадет.
func ParseSecret(stored string) Secret {
	if hasBcryptPrefix(stored) {
		return HashedSecret{Digest: []byte(stored)}
	}
	return PlaintextSecret{Value: []byte(stored)}
}

func hasBcryptPrefix(s string) bool {
	if len(s) < bcryptPrefixLen {
		return false
	}
	if s[0] != '$' || s[1] != '2' || s[3] != '$' {
		return false
	}
	switch s[2] {
	case 'a', 'b', 'x', 'y':
		return true
	}
	return false
}
