// cmd/client/cmd/media/list.go
package media

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/ui"
)

var ListCmd = &cobra.Command{
	Use:   "list <note-id>",
	Short: "Вложения заметки",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		items, err := app.ListMedia(ctx, args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения вложений: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("Вложений нет.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tТИП\tРАЗМЕР\tИМЯ")
		for _, m := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.FileType, ui.FormatSize(m.FileSize), m.FileName)
		}
		w.Flush()
		return nil
	},
}
