package ui

import (
	"fmt"
	"os"

	"github.com/hance08/moneymgr/internal/model"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

func Separator() {
	pterm.Println(pterm.Gray("---------------------------------------------------------"))
}

// ColorByType paints s green for income, red for expense and blue for transfer.
func ColorByType(t model.TransactionType, s string) string {
	switch t {
	case model.TypeIncome:
		return pterm.Green(s)
	case model.TypeExpense:
		return pterm.Red(s)
	case model.TypeTransfer:
		return pterm.Blue(s)
	default:
		return s
	}
}

// IsInteractive reports whether stdin and stdout are both terminals,
// which the huh and survey prompts need.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
