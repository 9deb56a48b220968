package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"github.com/SscSPs/floor_assignment_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// displayLayoutHandler handles the board layout editor.
type displayLayoutHandler struct {
	layoutService portssvc.DisplayLayoutSvcFacade
}

func newDisplayLayoutHandler(ls portssvc.DisplayLayoutSvcFacade) *displayLayoutHandler {
	return &displayLayoutHandler{layoutService: ls}
}

func registerDisplayLayoutRoutes(rg *gin.RouterGroup, layoutService portssvc.DisplayLayoutSvcFacade) {
	h := newDisplayLayoutHandler(layoutService)

	layouts := rg.Group("/display-layouts")
	{
		layouts.GET("", h.listLayouts)
		layouts.POST("", h.createLayout)
		layouts.GET("/:id", h.getLayout)
		layouts.PUT("/:id", h.updateLayout)
		layouts.POST("/:id/activate", h.activateLayout)
		layouts.DELETE("/:id", h.deleteLayout)
	}
}

// listLayouts godoc
// @Summary List display layouts
// @Description Newest first. With active=true only the active layout is returned.
// @Tags display-layouts
// @Produce json
// @Param active query bool false "Only the active layout"
// @Success 200 {array} dto.DisplayLayoutResponse
// @Security BearerAuth
// @Router /display-layouts [get]
func (h *displayLayoutHandler) listLayouts(c *gin.Context) {
	var params dto.ListDisplayLayoutsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	layouts, err := h.layoutService.ListLayouts(c.Request.Context(), params.Active)
	if err != nil {
		respondError(c, err, "Failed to list display layouts")
		return
	}
	c.JSON(http.StatusOK, dto.ToDisplayLayoutResponses(layouts))
}

// getLayout godoc
// @Summary Get a display layout
// @Tags display-layouts
// @Produce json
// @Param id path int true "Layout ID"
// @Success 200 {object} dto.DisplayLayoutResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /display-layouts/{id} [get]
func (h *displayLayoutHandler) getLayout(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	layout, err := h.layoutService.GetLayoutByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get display layout")
		return
	}
	c.JSON(http.StatusOK, dto.ToDisplayLayoutResponse(layout))
}

// createLayout godoc
// @Summary Create a display layout
// @Description Cells must lie inside the grid and must not overlap.
// @Tags display-layouts
// @Accept json
// @Produce json
// @Param layout body dto.SaveDisplayLayoutRequest true "Layout"
// @Success 201 {object} dto.DisplayLayoutResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /display-layouts [post]
func (h *displayLayoutHandler) createLayout(c *gin.Context) {
	var req dto.SaveDisplayLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	layout, err := h.layoutService.CreateLayout(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create display layout")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Display layout created",
		slog.Int64("layout_id", layout.LayoutID))
	c.JSON(http.StatusCreated, dto.ToDisplayLayoutResponse(layout))
}

// updateLayout godoc
// @Summary Update a display layout
// @Description is_active=true makes this the only active layout; false clears it.
// @Tags display-layouts
// @Accept json
// @Produce json
// @Param id path int true "Layout ID"
// @Param layout body dto.SaveDisplayLayoutRequest true "Layout"
// @Success 200 {object} dto.DisplayLayoutResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /display-layouts/{id} [put]
func (h *displayLayoutHandler) updateLayout(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SaveDisplayLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	layout, err := h.layoutService.UpdateLayout(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update display layout")
		return
	}
	c.JSON(http.StatusOK, dto.ToDisplayLayoutResponse(layout))
}

// activateLayout godoc
// @Summary Activate a display layout
// @Tags display-layouts
// @Produce json
// @Param id path int true "Layout ID"
// @Success 200 {object} dto.DisplayLayoutResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /display-layouts/{id}/activate [post]
func (h *displayLayoutHandler) activateLayout(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	layout, err := h.layoutService.ActivateLayout(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to activate display layout")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Display layout activated", slog.Int64("layout_id", id))
	c.JSON(http.StatusOK, dto.ToDisplayLayoutResponse(layout))
}

// deleteLayout godoc
// @Summary Delete a display layout
// @Tags display-layouts
// @Produce json
// @Param id path int true "Layout ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /display-layouts/{id} [delete]
func (h *displayLayoutHandler) deleteLayout(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.layoutService.DeleteLayout(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete display layout")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
