// cmd/client/cmd/pay/create.go
package pay

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/ui"
)

var (
	amount   int64
	currency string
)

var CreateCmd = &cobra.Command{
	Use:   "create <product-id>",
	Short: "Создать платежную ссылку",
	Long: `Создает ссылку на оплату у платежного провайдера и выводит её.

Оплата проходит на стороне провайдера, статус платежа обновится после
обработки его уведомления.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		link, err := app.CreatePayment(ctx, args[0], amount, currency)
		if err != nil {
			return fmt.Errorf("ошибка создания платежа: %w", err)
		}

		ui.Success.Printf("Платеж создан: %s\n", link.PaymentID)
		fmt.Println(link.URL)
		return nil
	},
}

func init() {
	CreateCmd.Flags().Int64Var(&amount, "amount", 0, "сумма в минимальных единицах валюты")
	CreateCmd.Flags().StringVar(&currency, "currency", "USD", "валюта платежа")
	_ = CreateCmd.MarkFlagRequired("amount")
}
