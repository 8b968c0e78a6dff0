// cmd/client/cmd/media/upload.go
package media

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/ui"
)

var UploadCmd = &cobra.Command{
	Use:   "upload <note-id> <файл>",
	Short: "Прикрепить файл к заметке",
	Long: `Загружает файл на сервер и прикрепляет его к заметке.

Допускаются изображения, аудио и видео размером до 50 МБ.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		noteID, filePath := args[0], args[1]

		file, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("ошибка открытия файла: %w", err)
		}
		defer file.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		m, err := app.UploadMedia(ctx, noteID, filePath, file)
		if err != nil {
			return fmt.Errorf("ошибка загрузки: %w", err)
		}

		ui.Success.Printf("Файл загружен: %s (%s, %s)\n", m.ID, m.FileName, app.FormatSize(m.FileSize))
		return nil
	},
}
