package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	passphrase := []byte("test-passphrase-123")
	plaintext := []byte("hello cykel")

	container, err := Encrypt(passphrase, plaintext)
	if err != nil {
		t.Fatalf("Ошибка шифрования: %v", err)
	}

	// Длина контейнера: соль(32) + nonce(12) + маркер(8) + данные + тег(16)
	expectedLen := 32 + 12 + 8 + len(plaintext) + 16
	if len(container) != expectedLen {
		t.Errorf("Неправильная длина контейнера: ожидалось %d, получено %d", expectedLen, len(container))
	}

	decrypted, err := Decrypt(passphrase, container)
	if err != nil {
		t.Fatalf("Ошибка расшифровки: %v", err)
	}

	if !bytes.Equal(decrypted, plaintext) {
		t.Error("Расшифрованные данные не совпадают с оригиналом")
	}
}

func TestEncryptEmptyPlaintext(t *testing.T) {
	passphrase := []byte("passphrase")

	container, err := Encrypt(passphrase, nil)
	if err != nil {
		t.Fatalf("Ошибка шифрования: %v", err)
	}

	decrypted, err := Decrypt(passphrase, container)
	if err != nil {
		t.Fatalf("Ошибка расшифровки: %v", err)
	}
	if len(decrypted) != 0 {
		t.Errorf("Ожидался пустой результат, получено %d байт", len(decrypted))
	}
}

func TestWrongPassphraseFails(t *testing.T) {
	container, err := Encrypt([]byte("correct"), []byte("secret data"))
	if err != nil {
		t.Fatalf("Ошибка шифрования: %v", err)
	}

	_, err = Decrypt([]byte("wrong"), container)
	if !errors.Is(err, ErrDecrypt) {
		t.Errorf("Ожидалась ErrDecrypt, получено: %v", err)
	}
}

func TestCorruptionFails(t *testing.T) {
	passphrase := []byte("passphrase")
	container, err := Encrypt(passphrase, []byte("payload for corruption test"))
	if err != nil {
		t.Fatalf("Ошибка шифрования: %v", err)
	}

	// Порча байта в каждой зоне контейнера: соль, nonce, шифротекст, тег
	for _, offset := range []int{0, 35, 50, len(container) - 1} {
		corrupted := make([]byte, len(container))
		copy(corrupted, container)
		corrupted[offset] ^= 0xFF

		if _, err := Decrypt(passphrase, corrupted); !errors.Is(err, ErrDecrypt) {
			t.Errorf("Порча по смещению %d: ожидалась ErrDecrypt, получено: %v", offset, err)
		}
	}
}

func TestTruncationFails(t *testing.T) {
	passphrase := []byte("passphrase")
	container, err := Encrypt(passphrase, []byte("payload for truncation test"))
	if err != nil {
		t.Fatalf("Ошибка шифрования: %v", err)
	}

	// Усечение до валидной по формату длины — ошибка расшифровки
	if _, err := Decrypt(passphrase, container[:len(container)-1]); !errors.Is(err, ErrDecrypt) {
		t.Errorf("Ожидалась ErrDecrypt, получено: %v", err)
	}
}

func TestFormatFloor(t *testing.T) {
	// Все, что короче 32+12+8 байт, отклоняется до попытки расшифровки
	for _, size := range []int{0, 10, 44, 51} {
		_, err := Decrypt([]byte("any"), make([]byte, size))
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Длина %d: ожидалась ErrInvalidFormat, получено: %v", size, err)
		}
	}
}

func TestDecryptFailureIndistinguishable(t *testing.T) {
	container, err := Encrypt([]byte("correct"), []byte("secret"))
	if err != nil {
		t.Fatalf("Ошибка шифрования: %v", err)
	}

	_, wrongPassErr := Decrypt([]byte("wrong"), container)

	corrupted := make([]byte, len(container))
	copy(corrupted, container)
	corrupted[len(corrupted)-1] ^= 0x01
	_, corruptErr := Decrypt([]byte("correct"), corrupted)

	// Неверная фраза и поврежденный контейнер неразличимы
	if wrongPassErr == nil || corruptErr == nil {
		t.Fatal("Обе расшифровки должны завершиться ошибкой")
	}
	if wrongPassErr.Error() != corruptErr.Error() {
		t.Errorf("Ошибки различимы: %q против %q", wrongPassErr, corruptErr)
	}
	if !errors.Is(wrongPassErr, ErrDecrypt) || !errors.Is(corruptErr, ErrDecrypt) {
		t.Error("Обе ошибки должны быть ErrDecrypt")
	}
}

func TestFreshSaltAndNonce(t *testing.T) {
	passphrase := []byte("passphrase")
	plaintext := []byte("same payload")

	first, err := Encrypt(passphrase, plaintext)
	if err != nil {
		t.Fatalf("Ошибка шифрования: %v", err)
	}
	second, err := Encrypt(passphrase, plaintext)
	if err != nil {
		t.Fatalf("Ошибка шифрования: %v", err)
	}

	if bytes.Equal(first[:32], second[:32]) {
		t.Error("Соль должна генерироваться заново при каждом шифровании")
	}
	if bytes.Equal(first[32:44], second[32:44]) {
		t.Error("Nonce должен генерироваться заново при каждом шифровании")
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	passphrase := []byte("passphrase")
	salt := bytes.Repeat([]byte{0x42}, 32)

	first := DeriveKey(passphrase, salt)
	second := DeriveKey(passphrase, salt)

	if len(first) != 32 {
		t.Errorf("Неправильная длина ключа: ожидалось 32, получено %d", len(first))
	}
	if !bytes.Equal(first, second) {
		t.Error("Одинаковые входы должны давать одинаковый ключ")
	}

	other := DeriveKey(passphrase, bytes.Repeat([]byte{0x43}, 32))
	if bytes.Equal(first, other) {
		t.Error("Разная соль должна давать разный ключ")
	}
}
