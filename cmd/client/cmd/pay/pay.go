// cmd/client/cmd/pay/pay.go
package pay

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var PayCmd = &cobra.Command{
	Use:   "pay",
	Short: "Платежи",
	Long:  `Создание платежных ссылок для оплаты подписки.`,
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
