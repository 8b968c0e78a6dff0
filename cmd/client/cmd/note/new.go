// cmd/client/cmd/note/new.go
package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/ui"
)

var NewCmd = &cobra.Command{
	Use:   "new [текст]",
	Short: "Создать заметку",
	Long: `Создает заметку на сервере. Текст можно передать аргументами,
пустая заметка тоже допустима.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		content := strings.Join(args, " ")

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		n, err := app.Notes.Create(ctx, content)
		if err != nil {
			return fmt.Errorf("ошибка создания заметки: %w", err)
		}

		ui.Success.Printf("Заметка создана: %s\n", n.ID)
		return nil
	},
}
