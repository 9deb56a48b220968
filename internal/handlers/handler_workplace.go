package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"github.com/SscSPs/floor_assignment_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workplaceHandler handles HTTP requests related to workplaces.
type workplaceHandler struct {
	workplaceService portssvc.WorkplaceSvcFacade
}

// newWorkplaceHandler creates a new workplaceHandler.
func newWorkplaceHandler(ws portssvc.WorkplaceSvcFacade) *workplaceHandler {
	return &workplaceHandler{
		workplaceService: ws,
	}
}

// registerWorkplaceRoutes registers routes related to workplaces.
func registerWorkplaceRoutes(rg *gin.RouterGroup, workplaceService portssvc.WorkplaceSvcFacade) {
	h := newWorkplaceHandler(workplaceService)

	workplaces := rg.Group("/workplaces")
	{
		workplaces.GET("", h.listWorkplaces)
		workplaces.POST("", h.createWorkplace)
		workplaces.POST("/import", h.importWorkplaces)
		workplaces.GET("/:id", h.getWorkplace)
		workplaces.PUT("/:id", h.updateWorkplace)
		workplaces.DELETE("/:id", h.deleteWorkplace)
	}
}

// createWorkplace godoc
// @Summary Create a new workplace
// @Description Creates a workplace. Numbers are unique; can_assign defaults to true.
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace body dto.SaveWorkplaceRequest true "Workplace details"
// @Success 201 {object} dto.WorkplaceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or number already in use"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create workplace"
// @Security BearerAuth
// @Router /workplaces [post]
func (h *workplaceHandler) createWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to create workplace", slog.Int("number", req.Number), slog.String("name", req.Name))

	newWorkplace, err := h.workplaceService.CreateWorkplace(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create workplace")
		return
	}

	logger.Info("Workplace created successfully", slog.Int64("workplace_id", newWorkplace.WorkplaceID))
	c.JSON(http.StatusCreated, dto.ToWorkplaceResponse(newWorkplace))
}

// listWorkplaces godoc
// @Summary List workplaces
// @Description Retrieves every workplace ordered by number.
// @Tags workplaces
// @Produce  json
// @Success 200 {array} dto.WorkplaceResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list workplaces"
// @Security BearerAuth
// @Router /workplaces [get]
func (h *workplaceHandler) listWorkplaces(c *gin.Context) {
	workplaces, err := h.workplaceService.ListWorkplaces(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list workplaces")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkplaceResponses(workplaces))
}

// getWorkplace godoc
// @Summary Get a workplace
// @Tags workplaces
// @Produce json
// @Param id path int true "Workplace ID"
// @Success 200 {object} dto.WorkplaceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{id} [get]
func (h *workplaceHandler) getWorkplace(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	workplace, err := h.workplaceService.GetWorkplaceByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get workplace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkplaceResponse(workplace))
}

// updateWorkplace godoc
// @Summary Update a workplace
// @Tags workplaces
// @Accept json
// @Produce json
// @Param id path int true "Workplace ID"
// @Param workplace body dto.SaveWorkplaceRequest true "Workplace details"
// @Success 200 {object} dto.WorkplaceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{id} [put]
func (h *workplaceHandler) updateWorkplace(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SaveWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	workplace, err := h.workplaceService.UpdateWorkplace(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update workplace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkplaceResponse(workplace))
}

// deleteWorkplace godoc
// @Summary Delete a workplace
// @Description Assignments to the workplace are removed with it.
// @Tags workplaces
// @Produce json
// @Param id path int true "Workplace ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{id} [delete]
func (h *workplaceHandler) deleteWorkplace(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.workplaceService.DeleteWorkplace(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete workplace")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// importWorkplaces godoc
// @Summary Import workplaces
// @Description Bulk-creates workplaces from a spreadsheet with number, name and optional color columns.
// @Tags workplaces
// @Accept mpfd
// @Produce json
// @Param file formData file true "Spreadsheet"
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /workplaces/import [post]
func (h *workplaceHandler) importWorkplaces(c *gin.Context) {
	handleImport(c, h.workplaceService.ImportWorkplaces, "Failed to import workplaces")
}
