package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sudoku_variants_go/internal/variant"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List registered variants and their supported sizes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, info := range variant.All() {
				fmt.Printf("%-14s sizes %v  %s\n", info.Type, info.Sizes, info.Description)
			}
		},
	}
}
