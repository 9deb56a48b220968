package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"github.com/SscSPs/floor_assignment_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type importFunc func(ctx context.Context, filename string, r io.Reader) (*domain.ImportResult, error)

// handleImport reads the multipart "file" field and hands it to run.
func handleImport(c *gin.Context, run importFunc, failure string) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: `a spreadsheet must be uploaded in the "file" field`})
		return
	}
	f, err := header.Open()
	if err != nil {
		respondError(c, err, failure)
		return
	}
	defer f.Close()

	result, err := run(c.Request.Context(), header.Filename, f)
	if err != nil {
		respondError(c, err, failure)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Import finished",
		slog.String("filename", header.Filename),
		slog.Int("imported", result.Imported),
		slog.Int("failed", result.Failed))
	c.JSON(http.StatusOK, dto.ToImportResultResponse(result))
}
