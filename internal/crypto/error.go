package crypto

import (
	"errors"
)

var (
	// ErrEncrypt — ошибка при шифровании (на практике не возникает
	// при корректной длине ключа).
	ErrEncrypt = errors.New("encryption failed")

	// ErrDecrypt — единая непрозрачная ошибка расшифровки: неверная
	// парольная фраза, поврежденный контейнер или несовпадение маркера.
	// Причины намеренно неразличимы.
	ErrDecrypt = errors.New("decryption failed: wrong passphrase or corrupted data")

	// ErrInvalidFormat — контейнер короче минимальной длины формата.
	ErrInvalidFormat = errors.New("invalid container format")
)
