package model

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	cellAlive = "█"
	cellDead  = "·"

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the board to the terminal with a generation header.
// The board is only read, never modified.
func (r *TerminalRenderer) Display(b *Board, generation int) {
	fmt.Printf("Generation: %d\n", generation)
	fmt.Printf("Alive cells: %d\n", b.Population())

	border := strings.Repeat("─", b.Width()+2)
	fmt.Println(border)
	for row := range b.Height() {
		fmt.Print("│")
		for col := range b.Width() {
			if b.Alive(Cell{Row: row, Col: col}) {
				fmt.Print(cellAlive)
			} else {
				fmt.Print(cellDead)
			}
		}
		fmt.Println("│")
	}
	fmt.Println(border)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
