package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	KeySize = 32
	IVSize  = aes.BlockSize
)

var (
	// ErrConfig - ключ или IV неверной длины. Ошибка конфигурации, не повторять.
	ErrConfig = errors.New("invalid field cipher configuration")
	// ErrField - отдельное поле не удалось расшифровать.
	ErrField = errors.New("field decryption failed")
)

type ConfigError struct {
	KeyLen int
	IVLen  int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: key must be %d bytes (got %d), iv must be %d bytes (got %d)",
		ErrConfig, KeySize, e.KeyLen, IVSize, e.IVLen)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

type FieldError struct {
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrField, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrField, e.Reason)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrField
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldCodec расшифровывает поля адреса, зашифрованные AES-256-CBC с PKCS#7.
// Один ключ и один фиксированный IV на весь процесс: так зашифрованы
// уже существующие данные. Целостность не проверяется.
type FieldCodec struct {
	block cipher.Block
	iv    []byte
}

// NewFieldCodec проверяет длины ключа и IV и создает codec.
func NewFieldCodec(key, iv []byte) (*FieldCodec, error) {
	if err := validate(key, iv); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return &FieldCodec{
		block: block,
		iv:    bytes.Clone(iv),
	}, nil
}

func validate(key, iv []byte) error {
	if len(key) != KeySize || len(iv) != IVSize {
		return &ConfigError{KeyLen: len(key), IVLen: len(iv)}
	}
	return nil
}

// Decrypt расшифровывает hex-строку и возвращает UTF-8 текст.
func (c *FieldCodec) Decrypt(ciphertextHex string) (string, error) {
	if c == nil || c.block == nil {
		return "", &ConfigError{}
	}

	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", &FieldError{Reason: "decode hex", Err: err}
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", &FieldError{Reason: fmt.Sprintf("ciphertext length %d is not a multiple of the block size", len(ciphertext))}
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(plaintext, ciphertext)

	plaintext, err = unpad(plaintext)
	if err != nil {
		return "", &FieldError{Reason: "unpad", Err: err}
	}

	return strings.ToValidUTF8(string(plaintext), "\uFFFD"), nil
}

func unpad(b []byte) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, errors.New("bad padding")
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, errors.New("bad padding")
		}
	}
	return b[:len(b)-n], nil
}
