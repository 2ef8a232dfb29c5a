// Package server exposes the engine over HTTP for the UI layer.
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sudoku_variants_go/internal/generator"
	"sudoku_variants_go/internal/types"
	"sudoku_variants_go/internal/validator"
	"sudoku_variants_go/internal/variant"
)

// New builds the gin router.
func New() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	api := router.Group("/api")
	api.GET("/variants", listVariants)
	api.POST("/puzzles", createPuzzle)
	api.POST("/puzzles/check", checkBoard)
	api.POST("/puzzles/move", checkMove)

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status())
	}
}

func listVariants(c *gin.Context) {
	c.JSON(http.StatusOK, variant.All())
}

type createPuzzleRequest struct {
	Variant    types.Variant    `json:"variant" binding:"required"`
	Size       int              `json:"size" binding:"required"`
	Difficulty types.Difficulty `json:"difficulty"`
}

type createPuzzleResponse struct {
	ID     string      `json:"id"`
	Puzzle *types.Grid `json:"puzzle"`
}

func createPuzzle(c *gin.Context) {
	var req createPuzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = types.Easy
	}

	gen, err := generator.New(req.Variant, req.Size)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, types.ErrUnsupportedSize) && !errors.Is(err, variant.ErrUnknownVariant) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if err := gen.SetDifficulty(req.Difficulty); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid, err := gen.Generate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, createPuzzleResponse{
		ID:     uuid.NewString(),
		Puzzle: grid,
	})
}

// checkShapes rejects malformed client payloads before any rule checks:
// a grid with broken variant data or a board that is not Size×Size.
func checkShapes(grid *types.Grid, board [][]int) error {
	if err := grid.ValidateShape(); err != nil {
		return err
	}
	if len(board) != grid.Size {
		return errors.New("board size does not match puzzle")
	}
	for i, row := range board {
		if len(row) != grid.Size {
			return fmt.Errorf("board row %d has %d cells, want %d", i, len(row), grid.Size)
		}
	}
	return nil
}

type checkBoardRequest struct {
	Grid  *types.Grid `json:"puzzle" binding:"required"`
	Board [][]int     `json:"board" binding:"required"`
}

func checkBoard(c *gin.Context) {
	var req checkBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := checkShapes(req.Grid, req.Board); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid := validator.ValidateBoard(req.Grid, req.Board)
	complete := validator.IsBoardComplete(req.Board)
	c.JSON(http.StatusOK, gin.H{
		"valid":    valid,
		"complete": complete,
		"solved":   valid && complete,
	})
}

type checkMoveRequest struct {
	Grid  *types.Grid `json:"puzzle" binding:"required"`
	Board [][]int     `json:"board" binding:"required"`
	Row   int         `json:"row"`
	Col   int         `json:"col"`
	Value int         `json:"value" binding:"required"`
}

func checkMove(c *gin.Context) {
	var req checkMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := checkShapes(req.Grid, req.Board); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": validator.IsValidMove(req.Grid, req.Board, req.Row, req.Col, req.Value),
	})
}
