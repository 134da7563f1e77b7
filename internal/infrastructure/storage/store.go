package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/steveppt9/cykel/internal/crypto"
	"github.com/steveppt9/cykel/internal/domain/vault"
)

const (
	dirPermissions  = 0700
	filePermissions = 0600
)

// Store хранит агрегат в одном зашифрованном файле.
type Store struct {
	path string
}

// NewStore создает хранилище, привязанное к файлу по указанному пути.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path возвращает путь к файлу хранилища.
func (s *Store) Path() string {
	return s.path
}

// Exists сообщает, существует ли файл хранилища.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save сериализует агрегат, шифрует его парольной фразой и записывает
// контейнер на диск. Запись идет во временный файл с последующим
// атомарным переименованием, чтобы сбой посреди записи не оставил
// поврежденное хранилище.
func (s *Store) Save(passphrase []byte, data *vault.Data) error {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("сериализация данных: %w", err)
	}
	defer crypto.ClearMemory(plaintext)

	container, err := crypto.Encrypt(passphrase, plaintext)
	if err != nil {
		return fmt.Errorf("шифрование данных: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("создание директории данных: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".vault-*")
	if err != nil {
		return fmt.Errorf("создание временного файла: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(container); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("запись временного файла: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("закрытие временного файла: %w", err)
	}
	if err := os.Chmod(tmpPath, filePermissions); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("установка прав на файл: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("переименование файла хранилища: %w", err)
	}

	return nil
}

// Load читает контейнер с диска, расшифровывает его и десериализует
// агрегат. Ошибка расшифровки и ошибка десериализации схлопываются
// в одну непрозрачную ErrOpenVault; ошибки ввода-вывода
// прокидываются с причиной.
func (s *Store) Load(passphrase []byte) (*vault.Data, error) {
	container, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("чтение файла хранилища: %w", err)
	}

	plaintext, err := crypto.Decrypt(passphrase, container)
	if err != nil {
		return nil, ErrOpenVault
	}
	defer crypto.ClearMemory(plaintext)

	var data vault.Data
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return nil, ErrOpenVault
	}

	return &data, nil
}

// Wipe необратимо удаляет файл хранилища. Отсутствие файла — успех.
func (s *Store) Wipe() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("удаление файла хранилища: %w", err)
	}
	return nil
}
