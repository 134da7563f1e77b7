// cmd/cykel/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"github.com/spf13/cobra"

	"github.com/steveppt9/cykel/internal/config"
	"github.com/steveppt9/cykel/internal/domain/session"
	"github.com/steveppt9/cykel/internal/infrastructure/storage"
	"github.com/steveppt9/cykel/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *session.Service
	vaultPath string
)

var rootCmd = &cobra.Command{
	Use:   "cykel",
	Short: "Cykel - локальный зашифрованный трекер менструального цикла",
	Long: `Cykel хранит дневные записи, симптомы и настройки в одном файле,
зашифрованном парольной фразой (Argon2id + AES-256-GCM). Все данные
остаются на этом устройстве; по записям восстанавливаются циклы,
строится прогноз следующего цикла и окно фертильности.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(_ *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	// Переопределяем путь к хранилищу из флага командной строки
	if vaultPath != "" {
		cfg.VaultPath = vaultPath
	}

	log = logger.New(cfg.Env)

	store := storage.NewStore(cfg.VaultPath)
	app = session.NewService(store, log)

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vaultPath, "vault", "", "путь к файлу хранилища")
}
