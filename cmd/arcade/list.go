package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade, including endless variants.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers("ID", "Title", "Mode")
	for _, g := range games {
		mode := "standard"
		if strings.HasSuffix(g.ID, "_endless") {
			mode = "endless"
		}
		t.Row(g.ID, g.Title, mode)
	}

	fmt.Println(t)
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
