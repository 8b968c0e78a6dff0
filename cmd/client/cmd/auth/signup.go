// cmd/client/cmd/auth/signup.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notekeeper/internal/app/client/ui"
)

var SignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Зарегистрировать новую учетную запись",
	Long: `Регистрация на сервере Notekeeper.

Если на сервере включено подтверждение почты, на указанный адрес придет
письмо, и вход станет возможен после подтверждения.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		fmt.Println("=== Регистрация ===")
		fmt.Println()

		email, password, err := readCredentials()
		if err != nil {
			return err
		}

		fmt.Print("Повторите пароль: ")
		confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		if password != string(confirm) {
			return fmt.Errorf("пароли не совпадают")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		resp, err := app.Signup(ctx, email, password)
		if err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		fmt.Println()
		if resp.RequiresConfirmation {
			ui.Warning.Println("Аккаунт создан, требуется подтверждение почты.")
			if resp.Message != "" {
				fmt.Println(resp.Message)
			}
			return nil
		}

		ui.Success.Println("Регистрация выполнена, вы вошли в систему.")
		return nil
	},
}
