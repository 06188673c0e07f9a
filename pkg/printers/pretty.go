// Package printers renders datasets for the non-interactive commands.
package printers

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/GLADI8R/landscape2/pkg/anchor"
	"github.com/GLADI8R/landscape2/pkg/catalog"
)

type PrettyPrint struct {
	ShowAnchors bool
}

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a category heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Subcategory prints a subcategory heading with its item count.
func (pp *PrettyPrint) Subcategory(category, name string, count int) {
	t := color.New(color.Bold)
	c := color.New(color.Faint)

	_, _ = t.Printf("  %s", name)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Print(" item")
	default:
		_, _ = c.Print(" items")
	}
	if pp.ShowAnchors {
		_, _ = c.Printf("  #%s", anchor.ForSection(category, name))
	}
	_, _ = c.Println("")
}

// Categories prints the grouped dataset as an indented outline.
func (pp *PrettyPrint) Categories(grouped catalog.CategoriesData) {
	for _, cat := range grouped.Categories {
		pp.Title(cat.Name)
		for _, sub := range cat.Subcategories {
			pp.Subcategory(cat.Name, sub.Name, len(sub.Items))
		}
		pp.NewLine()
	}
}
