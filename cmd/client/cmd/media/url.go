// cmd/client/cmd/media/url.go
package media

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var URLCmd = &cobra.Command{
	Use:   "url <media-id>",
	Short: "Получить ссылку на скачивание",
	Long:  `Выдает подписанную ссылку на файл. Ссылка действует один час.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		url, err := app.MediaURL(ctx, args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения ссылки: %w", err)
		}

		fmt.Println(url)
		return nil
	},
}
