package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sudoku_variants_go/db"
	"sudoku_variants_go/internal/generator"
	"sudoku_variants_go/internal/types"
	"sudoku_variants_go/internal/visualizer"
)

func newGenerateCmd() *cobra.Command {
	var (
		variantName string
		size        int
		difficulty  string
		count       int
		seed        int64
		outFile     string
		upload      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate puzzles and print them to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if upload {
				if err := db.Connect(); err != nil {
					return fmt.Errorf("connecting to PocketBase: %w", err)
				}
			}

			for i := 0; i < count; i++ {
				gen, err := generator.New(types.Variant(variantName), size)
				if err != nil {
					return err
				}
				if err := gen.SetDifficulty(types.Difficulty(difficulty)); err != nil {
					return err
				}
				if seed != 0 {
					gen.SetRand(rand.New(rand.NewSource(seed + int64(i))))
				}

				start := time.Now()
				grid, err := gen.Generate()
				if err != nil {
					return err
				}
				slog.Info("generated puzzle",
					"variant", grid.Variant, "size", grid.Size,
					"difficulty", grid.Difficulty, "took", time.Since(start))

				visualizer.NewVisualizer(grid).Print()

				if outFile != "" {
					data, err := grid.ToJSON()
					if err != nil {
						return fmt.Errorf("serializing puzzle: %w", err)
					}
					name := outFile
					if count > 1 {
						name = fmt.Sprintf("%s.%d", outFile, i)
					}
					if err := os.WriteFile(name, data, 0644); err != nil {
						return fmt.Errorf("writing %s: %w", name, err)
					}
				}

				if upload {
					id := uuid.NewString()[:6]
					if _, err := db.UploadSudoku(id, grid); err != nil {
						return fmt.Errorf("uploading puzzle: %w", err)
					}
					slog.Info("uploaded puzzle", "id", id)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&variantName, "variant", "classic", "variant to generate")
	cmd.Flags().IntVar(&size, "size", 9, "board size (4, 6 or 9)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "easy, medium or hard")
	cmd.Flags().IntVar(&count, "count", 1, "number of puzzles to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	cmd.Flags().StringVar(&outFile, "out", "", "write puzzle JSON to this file")
	cmd.Flags().BoolVar(&upload, "upload", false, "upload generated puzzles to PocketBase")

	return cmd
}
