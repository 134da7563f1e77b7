// cmd/cykel/cmd/helpers.go
package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/steveppt9/cykel/internal/crypto"
)

// promptPassphrase читает парольную фразу без отображения на экране.
func promptPassphrase(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения парольной фразы: %w", err)
	}
	return passphrase, nil
}

// unlockApp запрашивает парольную фразу и разблокирует сессию на время
// выполнения команды. Фраза затирается сразу после разблокировки.
func unlockApp() error {
	if !app.IsSetup() {
		return fmt.Errorf("хранилище еще не создано, выполните: cykel setup")
	}

	passphrase, err := promptPassphrase("Парольная фраза: ")
	if err != nil {
		return err
	}
	defer crypto.ClearMemory(passphrase)

	ok, err := app.Unlock(passphrase)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("неверная парольная фраза или хранилище повреждено")
	}

	return nil
}
