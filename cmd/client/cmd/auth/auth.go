// cmd/client/cmd/auth/auth.go
package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление учетной записью",
	Long:  `Регистрация, вход, выход и проверка текущей сессии.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

func readCredentials() (email, password string, err error) {
	fmt.Print("Email: ")
	_, _ = fmt.Scanln(&email)

	fmt.Print("Пароль: ")
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	fmt.Println()

	return email, string(passwordBytes), nil
}
