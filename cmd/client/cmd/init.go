// cmd/client/cmd/init.go
package cmd

import (
	"notekeeper/cmd/client/cmd/auth"
	"notekeeper/cmd/client/cmd/media"
	"notekeeper/cmd/client/cmd/note"
	"notekeeper/cmd/client/cmd/pay"
)

func init() {
	// Команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.SignupCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	// Команды работы с заметками
	rootCmd.AddCommand(note.NoteCmd)
	note.NoteCmd.AddCommand(note.ListCmd)
	note.NoteCmd.AddCommand(note.NewCmd)
	note.NoteCmd.AddCommand(note.EditCmd)
	note.NoteCmd.AddCommand(note.RemoveCmd)
	note.NoteCmd.AddCommand(note.SearchCmd)

	// Команды работы с вложениями
	rootCmd.AddCommand(media.MediaCmd)
	media.MediaCmd.AddCommand(media.UploadCmd)
	media.MediaCmd.AddCommand(media.ListCmd)
	media.MediaCmd.AddCommand(media.URLCmd)
	media.MediaCmd.AddCommand(media.RemoveCmd)

	// Платежи
	rootCmd.AddCommand(pay.PayCmd)
	pay.PayCmd.AddCommand(pay.CreateCmd)
}
