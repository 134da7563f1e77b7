package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	saltLen  = 32
	nonceLen = 12
	keyLen   = 32

	// Параметры Argon2id: 64 МиБ памяти, 3 итерации, 1 поток.
	argon2Time    = 3
	argon2Memory  = 64 * 1024
	argon2Threads = 1
)

// magic — фиксированный маркер, добавляемый к открытому тексту перед
// шифрованием. После успешной расшифровки по нему проверяется
// корректность парольной фразы.
var magic = []byte("CYKEL_V1")

// DeriveKey выводит 256-битный ключ из парольной фразы и соли (Argon2id).
// Детерминирован для одинаковых входов.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, argon2Time, argon2Memory, argon2Threads, keyLen)
}

// Encrypt шифрует данные парольной фразой.
// Формат результата: salt (32) || nonce (12) || ciphertext+tag.
// Соль и nonce генерируются заново при каждом вызове: повторное
// использование nonce с тем же ключом недопустимо для GCM.
func Encrypt(passphrase, plaintext []byte) ([]byte, error) {
	salt, err := GenerateRandomBytes(saltLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncrypt, err)
	}
	nonce, err := GenerateRandomBytes(nonceLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncrypt, err)
	}

	key := DeriveKey(passphrase, salt)
	defer ClearMemory(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncrypt, err)
	}

	// Добавляем маркер к открытому тексту для проверки при расшифровке
	payload := make([]byte, 0, len(magic)+len(plaintext))
	payload = append(payload, magic...)
	payload = append(payload, plaintext...)
	defer ClearMemory(payload)

	ciphertext := gcm.Seal(nil, nonce, payload, nil)

	out := make([]byte, 0, saltLen+nonceLen+len(ciphertext))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, ciphertext...)

	return out, nil
}

// Decrypt расшифровывает контейнер, созданный Encrypt, и возвращает
// исходный открытый текст без маркера.
//
// Неверная парольная фраза, поврежденный шифротекст и несовпадение
// маркера возвращают одну и ту же ошибку ErrDecrypt: различать их
// нельзя, чтобы не давать оракул атакующему.
func Decrypt(passphrase, container []byte) ([]byte, error) {
	if len(container) < saltLen+nonceLen+len(magic) {
		return nil, ErrInvalidFormat
	}

	salt := container[:saltLen]
	nonce := container[saltLen : saltLen+nonceLen]
	ciphertext := container[saltLen+nonceLen:]

	key := DeriveKey(passphrase, salt)
	defer ClearMemory(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, ErrDecrypt
	}

	decrypted, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}

	// Вторая проверка поверх AEAD: маркер должен совпасть. Ошибка
	// неотличима от ошибки расшифровки.
	if len(decrypted) < len(magic) || !bytes.Equal(decrypted[:len(magic)], magic) {
		ClearMemory(decrypted)
		return nil, ErrDecrypt
	}

	plaintext := make([]byte, len(decrypted)-len(magic))
	copy(plaintext, decrypted[len(magic):])
	ClearMemory(decrypted)

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
