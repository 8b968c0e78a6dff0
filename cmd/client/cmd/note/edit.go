// cmd/client/cmd/note/edit.go
package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/ui"
)

var EditCmd = &cobra.Command{
	Use:   "edit <id> <текст>",
	Short: "Заменить содержимое заметки",
	Long: `Полностью заменяет текст заметки. Правка применяется локально сразу,
а на сервер уходит отложенно и доотправляется при выходе.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		noteID := args[0]
		content := strings.Join(args[1:], " ")

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		// Подтягиваем коллекцию, чтобы правка применялась к актуальной версии
		if _, err := app.Notes.Load(ctx); err != nil {
			return fmt.Errorf("ошибка загрузки заметок: %w", err)
		}

		if err := app.Notes.Edit(noteID, content); err != nil {
			return fmt.Errorf("ошибка редактирования: %w", err)
		}

		app.Notes.Flush()

		ui.Success.Println("Заметка сохранена.")
		return nil
	},
}
