package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku_variants_go/internal/types"
	"sudoku_variants_go/internal/validator"
	"sudoku_variants_go/internal/variant"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListVariants(t *testing.T) {
	w := doJSON(t, New(), http.MethodGet, "/api/variants", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var infos []variant.Info
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	assert.Len(t, infos, 9)
}

func TestCreatePuzzle(t *testing.T) {
	w := doJSON(t, New(), http.MethodPost, "/api/puzzles", gin.H{
		"variant":    "classic",
		"size":       4,
		"difficulty": "easy",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp createPuzzleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Puzzle)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 4, resp.Puzzle.Size)
	assert.True(t, validator.IsBoardSolved(resp.Puzzle, resp.Puzzle.Solution))
}

func TestCreatePuzzleRejectsBadConfig(t *testing.T) {
	router := New()

	w := doJSON(t, router, http.MethodPost, "/api/puzzles", gin.H{
		"variant": "windoku",
		"size":    4,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/puzzles", gin.H{
		"variant": "samurai",
		"size":    9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/puzzles", gin.H{
		"variant":    "classic",
		"size":       9,
		"difficulty": "impossible",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckBoardAndMove(t *testing.T) {
	router := New()
	g, err := types.NewGrid(4, types.Classic)
	require.NoError(t, err)
	board := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}

	w := doJSON(t, router, http.MethodPost, "/api/puzzles/check", gin.H{
		"puzzle": g,
		"board":  board,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var check struct {
		Valid    bool `json:"valid"`
		Complete bool `json:"complete"`
		Solved   bool `json:"solved"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
	assert.True(t, check.Valid)
	assert.True(t, check.Complete)
	assert.True(t, check.Solved)

	board[0][0] = 0
	w = doJSON(t, router, http.MethodPost, "/api/puzzles/move", gin.H{
		"puzzle": g,
		"board":  board,
		"row":    0,
		"col":    0,
		"value":  1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var move struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &move))
	assert.True(t, move.Valid)
}

func TestCheckBoardSizeMismatch(t *testing.T) {
	g, err := types.NewGrid(9, types.Classic)
	require.NoError(t, err)

	w := doJSON(t, New(), http.MethodPost, "/api/puzzles/check", gin.H{
		"puzzle": g,
		"board":  [][]int{{1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckRejectsMalformedPayloads(t *testing.T) {
	router := New()
	g, err := types.NewGrid(4, types.Classic)
	require.NoError(t, err)

	// Right row count, ragged third row.
	ragged := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1},
		{4, 3, 2, 1},
	}
	w := doJSON(t, router, http.MethodPost, "/api/puzzles/check", gin.H{
		"puzzle": g,
		"board":  ragged,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/puzzles/move", gin.H{
		"puzzle": g,
		"board":  ragged,
		"row":    2,
		"col":    3,
		"value":  3,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Variant data that does not fit the board.
	eo, err := types.NewGrid(4, types.EvenOdd)
	require.NoError(t, err)
	eo.EvenMask = [][]bool{{true}}
	w = doJSON(t, router, http.MethodPost, "/api/puzzles/check", gin.H{
		"puzzle": eo,
		"board":  make([][]int, 4),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	wd, err := types.NewGrid(9, types.Windoku)
	require.NoError(t, err)
	wd.Windows = [][]int{{200}}
	w = doJSON(t, router, http.MethodPost, "/api/puzzles/move", gin.H{
		"puzzle": wd,
		"board":  make([][]int, 9),
		"row":    0,
		"col":    0,
		"value":  1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
