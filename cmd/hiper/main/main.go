package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/mroximut/hiper/cmd/hiper"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

func main() {
	rootCmd := hiper.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
