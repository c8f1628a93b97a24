package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cubedeck/cubedeck/pkg/alg"
)

// newListCmd creates the list command showing the built-in algorithm sets.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in algorithm sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	var rows [][]string
	for _, set := range alg.Sets() {
		algs, err := alg.Select(set)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			string(set),
			strconv.Itoa(len(algs)),
			alg.DeckName(set),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Set", "Cards", "Anki deck").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 0:
				return base.Foreground(colorCyan)
			case 1:
				return base.Foreground(colorWhite)
			default:
				return base.Foreground(colorGray)
			}
		})

	fmt.Println(t.Render())
	printNextStep("Generate a deck", "cubedeck generate --set pll")
	return nil
}
