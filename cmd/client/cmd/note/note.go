// cmd/client/cmd/note/note.go
package note

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/app/client/ui"
	"notekeeper/internal/domain/note"
)

var NoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Работа с заметками",
	Long:  `Создание, просмотр, редактирование, удаление и поиск заметок.`,
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

func printNotesTable(notes []note.View) {
	if len(notes) == 0 {
		fmt.Println("Заметок нет.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tОБНОВЛЕНА\tСОДЕРЖИМОЕ")
	for _, n := range notes {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			n.ID,
			n.UpdatedAt.Local().Format("02.01.2006 15:04"),
			ui.Truncate(firstLine(n.Content), 60),
		)
	}
	w.Flush()
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
