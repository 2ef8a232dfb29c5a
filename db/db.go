// Package db persists generated puzzles to PocketBase.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"

	"sudoku_variants_go/internal/types"
)

const collection = "sudokus"

// Record is a stored puzzle row.
type Record struct {
	ID         string      `json:"id"`
	Sudoku     *types.Grid `json:"sudoku"`
	Variant    string      `json:"variant"`
	Difficulty string      `json:"difficulty"`
	Size       string      `json:"size"`
	Created    string      `json:"created"`
	Updated    string      `json:"updated"`
}

var client *pocketbase.Client

// Connect loads credentials from the environment (optionally via .env)
// and authorizes against PocketBase. A re-authentication timer keeps the
// session alive.
func Connect() error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	url := os.Getenv("POCKETBASE_URL")
	if url == "" {
		return fmt.Errorf("POCKETBASE_URL is not set")
	}
	email := os.Getenv("POCKETBASE_EMAIL")
	password := os.Getenv("POCKETBASE_PASSWORD")

	client = pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(email, password))

	if err := client.Authorize(); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		for range ticker.C {
			if err := client.Authorize(); err != nil {
				slog.Error("re-authentication failed", "error", err)
			} else {
				slog.Info("re-authenticated with PocketBase")
			}
		}
	}()

	return nil
}

// UploadSudoku stores a generated grid under the given ID.
func UploadSudoku(id string, grid *types.Grid) (*pocketbase.ResponseCreate, error) {
	if client == nil {
		return nil, fmt.Errorf("not connected; call Connect first")
	}
	if len(id) == 0 || len(id) > 6 {
		return nil, fmt.Errorf("invalid ID %q: must be 1-6 characters", id)
	}

	sudokuJSON, err := grid.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal grid: %w", err)
	}

	exists, err := SudokuExists(id)
	if err != nil {
		return nil, fmt.Errorf("failed to check if sudoku exists: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("sudoku with ID %s already exists", id)
	}

	data := map[string]any{
		"id":         id,
		"sudoku":     string(sudokuJSON),
		"variant":    string(grid.Variant),
		"difficulty": string(grid.Difficulty),
		"size":       fmt.Sprint(grid.Size),
	}

	record, err := client.Create(collection, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload sudoku: %w", err)
	}
	return &record, nil
}

// GetSudoku fetches a stored puzzle by ID.
func GetSudoku(id string) (*Record, error) {
	if client == nil {
		return nil, fmt.Errorf("not connected; call Connect first")
	}

	raw, err := client.One(collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load sudoku %s: %w", id, err)
	}

	rec := &Record{
		ID:         str(raw["id"]),
		Variant:    str(raw["variant"]),
		Difficulty: str(raw["difficulty"]),
		Size:       str(raw["size"]),
		Created:    str(raw["created"]),
		Updated:    str(raw["updated"]),
	}
	grid, err := types.FromJSON([]byte(str(raw["sudoku"])))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal sudoku data: %w", err)
	}
	rec.Sudoku = grid
	return rec, nil
}

// ListSudokus pages through stored puzzles with optional filters on
// variant, size and difficulty.
func ListSudokus(page, perPage int, filters map[string]string, sortField, sortOrder string) (*pocketbase.ResponseList[map[string]any], error) {
	if client == nil {
		return nil, fmt.Errorf("not connected; call Connect first")
	}

	var rules []string
	if v, ok := filters["variant"]; ok {
		rules = append(rules, fmt.Sprintf("variant = %q", v))
	}
	if v, ok := filters["size"]; ok {
		rules = append(rules, fmt.Sprintf("size = %q", v))
	}
	if v, ok := filters["difficulty"]; ok {
		rules = append(rules, fmt.Sprintf("difficulty = %q", v))
	}

	sort := sortField
	if sortOrder == "desc" {
		sort = "-" + sortField
	}

	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    sort,
		Filters: strings.Join(rules, " && "),
	}

	result, err := client.List(collection, params)
	return &result, err
}

// SudokuExists reports whether a record with the given ID is stored.
func SudokuExists(id string) (bool, error) {
	if client == nil {
		return false, fmt.Errorf("not connected; call Connect first")
	}

	_, err := client.One(collection, id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
