// cmd/client/cmd/media/rm.go
package media

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/ui"
)

var RemoveCmd = &cobra.Command{
	Use:   "rm <media-id>",
	Short: "Удалить вложение",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.DeleteMedia(ctx, args[0]); err != nil {
			return fmt.Errorf("ошибка удаления вложения: %w", err)
		}

		ui.Success.Println("Вложение удалено.")
		return nil
	},
}
