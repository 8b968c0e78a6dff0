// cmd/client/cmd/auth/logout.go
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/ui"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	Long: `Отзывает сессию на сервере и удаляет сохраненный токен.

Локальный токен удаляется даже если сервер недоступен.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if !app.Authenticated() {
			fmt.Println("Вы не авторизованы.")
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Logout(ctx); err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}

		ui.Success.Println("Выход выполнен, токен удален.")
		return nil
	},
}
