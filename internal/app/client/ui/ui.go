package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	Success = color.New(color.FgGreen)
	Warning = color.New(color.FgYellow)
	Failure = color.New(color.FgRed)
	Accent  = color.New(color.FgCyan, color.Bold)
)

// FormatSize переводит размер в байтах в человекочитаемый вид.
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// Truncate обрезает строку для табличного вывода.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
