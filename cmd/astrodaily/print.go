package main

import (
	"fmt"

	"github.com/skopia/astrodaily/internal/domain"
)

// printEntry writes one entry to stdout in a readable block.
func printEntry(entry domain.Entry) {
	fmt.Printf("%s  %s\n", entry.Date, entry.Title)
	if entry.Copyright != "" {
		fmt.Printf("© %s\n", entry.Copyright)
	}
	fmt.Printf("[%s] %s\n", entry.MediaKind(), entry.URL)
	if entry.HDURL != "" {
		fmt.Printf("HD: %s\n", entry.HDURL)
	}
	fmt.Println()
	fmt.Println(entry.Explanation)
}

// printEntryLine writes one entry as a single list row.
func printEntryLine(entry domain.Entry) {
	fmt.Printf("%s  [%-5s]  %s\n", entry.Date, entry.MediaKind(), entry.Title)
}
