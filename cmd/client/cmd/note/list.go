// cmd/client/cmd/note/list.go
package note

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список заметок",
	Long: `Загружает актуальный список заметок с сервера, новые сверху.

Если сервер недоступен, показывается локальный кэш.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		notes, err := app.Notes.Load(ctx)
		if err != nil {
			return fmt.Errorf("ошибка получения заметок: %w", err)
		}

		printNotesTable(notes)
		return nil
	},
}
