// cmd/client/cmd/media/media.go
package media

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var MediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Работа с вложениями",
	Long:  `Загрузка, просмотр и удаление файлов, прикрепленных к заметкам.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	if !app.Authenticated() {
		return nil, fmt.Errorf("требуется вход: notekeeper auth login")
	}
	return app, nil
}
