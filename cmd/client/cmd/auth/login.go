// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/ui"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему",
	Long: `Аутентификация на сервере Notekeeper.

После входа токен сохраняется локально для последующих операций.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		fmt.Println("=== Вход в систему ===")
		fmt.Println()

		email, password, err := readCredentials()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Login(ctx, email, password); err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		fmt.Println()
		ui.Success.Println("Вход выполнен успешно.")

		// Сразу подтягиваем заметки в локальный кэш
		if _, err := app.Notes.Load(ctx); err != nil {
			ui.Warning.Printf("Не удалось загрузить заметки: %v\n", err)
		}

		return nil
	},
}
