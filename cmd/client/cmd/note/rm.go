// cmd/client/cmd/note/rm.go
package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/ui"
)

var force bool

var RemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Удалить заметку",
	Long: `Удаляет заметку вместе с её вложениями. Заметка исчезает из списка
только после подтверждения сервера.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		noteID := args[0]

		if !force {
			fmt.Printf("Удалить заметку %s? [y/N]: ", noteID)
			var answer string
			_, _ = fmt.Scanln(&answer)
			if strings.ToLower(answer) != "y" {
				fmt.Println("Отменено.")
				return nil
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Notes.Delete(ctx, noteID); err != nil {
			return fmt.Errorf("ошибка удаления: %w", err)
		}

		ui.Success.Println("Заметка удалена.")
		return nil
	},
}

func init() {
	RemoveCmd.Flags().BoolVarP(&force, "force", "f", false, "удалить без подтверждения")
}
