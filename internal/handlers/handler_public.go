package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"github.com/SscSPs/floor_assignment_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// publicHandler serves the unauthenticated display clients.
type publicHandler struct {
	publicService   portssvc.PublicSvcFacade
	pageInterval    time.Duration
	refreshInterval time.Duration
}

func registerPublicRoutes(rg *gin.RouterGroup, cfg *config.Config, publicService portssvc.PublicSvcFacade) {
	h := &publicHandler{
		publicService:   publicService,
		pageInterval:    cfg.DisplayPageInterval,
		refreshInterval: cfg.DisplayRefreshInterval,
	}

	rg.GET("", h.getPublicView)
	rg.GET("/layout", h.getLayout)
	rg.GET("/board", h.getBoard)
}

// getPublicView godoc
// @Summary Public daily view
// @Description Workplace mode omits absent employees; employee mode includes them.
// @Tags public
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param mode query string false "workplace or employee"
// @Success 200 {array} dto.DailyEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /public [get]
func (h *publicHandler) getPublicView(c *gin.Context) {
	var q dto.PublicViewQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	date, err := domain.ParseDate(q.Date)
	if err != nil {
		respondBindError(c, err)
		return
	}
	mode := domain.ParseDisplayMode(q.Mode, h.publicService.DefaultMode())
	view, err := h.publicService.GetPublicView(c.Request.Context(), date, mode)
	if err != nil {
		respondError(c, err, "Failed to load daily view")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyViewResponse(view))
}

// getLayout godoc
// @Summary Active display layout
// @Description The active layout, or the default grid when none is active.
// @Tags public
// @Produce json
// @Success 200 {object} dto.DisplayLayoutResponse
// @Router /public/layout [get]
func (h *publicHandler) getLayout(c *gin.Context) {
	layout, err := h.publicService.ActiveLayout(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load display layout")
		return
	}
	c.JSON(http.StatusOK, dto.ToDisplayLayoutResponse(layout))
}

// getBoard godoc
// @Summary Composed board
// @Description One page of the board laid onto the active layout, with paging and refresh hints.
// @Tags public
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Param mode query string false "workplace or employee"
// @Param page query int false "Zero-based page"
// @Success 200 {object} dto.BoardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /public/board [get]
func (h *publicHandler) getBoard(c *gin.Context) {
	var q dto.BoardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	date := h.publicService.Today()
	if q.Date != "" {
		parsed, err := domain.ParseDate(q.Date)
		if err != nil {
			respondBindError(c, err)
			return
		}
		date = parsed
	}
	mode := domain.ParseDisplayMode(q.Mode, h.publicService.DefaultMode())

	board, err := h.publicService.GetBoard(c.Request.Context(), date, mode, q.Page)
	if err != nil {
		respondError(c, err, "Failed to compose board")
		return
	}
	c.JSON(http.StatusOK, dto.ToBoardResponse(board, h.pageInterval, h.refreshInterval))
}
