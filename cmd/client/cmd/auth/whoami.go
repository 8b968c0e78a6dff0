// cmd/client/cmd/auth/whoami.go
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/ui"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Показать текущего пользователя",
	Long:  `Проверяет токен на сервере и выводит владельца сессии.`,
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

		u, err := app.Verify(ctx)
		if err != nil {
			return fmt.Errorf("токен недействителен: %w", err)
		}

		ui.Accent.Println(u.Email)
		if u.EmailConfirmedAt == nil {
			ui.Warning.Println("Почта не подтверждена.")
		}
		return nil
	},
}
