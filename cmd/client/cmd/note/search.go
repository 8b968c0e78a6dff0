// cmd/client/cmd/note/search.go
package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var partial bool

var SearchCmd = &cobra.Command{
	Use:   "search <запрос>",
	Short: "Поиск по заметкам",
	Long: `Полнотекстовый поиск по содержимому заметок на сервере.

С флагом --partial ищет по префиксам слов, что удобно для поиска по мере
набора. Если сервер недоступен, выполняется поиск по подстроке в локальном
кэше.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		notes, err := app.Notes.Search(ctx, query, partial)
		if err != nil {
			return fmt.Errorf("ошибка поиска: %w", err)
		}

		printNotesTable(notes)
		return nil
	},
}

func init() {
	SearchCmd.Flags().BoolVar(&partial, "partial", false, "поиск по префиксам слов")
}
