package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"github.com/SscSPs/floor_assignment_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assignmentHandler handles the daily assignment board.
type assignmentHandler struct {
	assignmentService portssvc.AssignmentSvcFacade
}

func newAssignmentHandler(as portssvc.AssignmentSvcFacade) *assignmentHandler {
	return &assignmentHandler{assignmentService: as}
}

func registerAssignmentRoutes(rg *gin.RouterGroup, assignmentService portssvc.AssignmentSvcFacade) {
	h := newAssignmentHandler(assignmentService)

	assignment := rg.Group("/assignment")
	{
		assignment.GET("", h.getDailyView)
		assignment.GET("/summary", h.getSummary)
		assignment.POST("", h.assign)
		assignment.DELETE("", h.unassign)
	}
}

// getDailyView godoc
// @Summary Daily view
// @Description Present, active, shown employees for the date with their workplace assignment.
// @Tags assignment
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} dto.DailyEntryResponse
// @Failure 400 {object} dto.ErrorResponse "date missing or malformed"
// @Security BearerAuth
// @Router /assignment [get]
func (h *assignmentHandler) getDailyView(c *gin.Context) {
	var q dto.DateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	date, err := q.ParsedDate()
	if err != nil {
		respondBindError(c, err)
		return
	}
	view, err := h.assignmentService.GetDailyView(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "Failed to load daily view")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyViewResponse(view))
}

// getSummary godoc
// @Summary Assignment summary
// @Description Unassigned present employees per shift and each workplace with its employees.
// @Tags assignment
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.AssignmentSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /assignment/summary [get]
func (h *assignmentHandler) getSummary(c *gin.Context) {
	var q dto.DateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	date, err := q.ParsedDate()
	if err != nil {
		respondBindError(c, err)
		return
	}
	summary, err := h.assignmentService.GetSummary(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "Failed to load assignment summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssignmentSummaryResponse(summary))
}

// assign godoc
// @Summary Assign an employee
// @Description Places the employee on the workplace for the date, replacing any earlier assignment.
// @Tags assignment
// @Accept json
// @Produce json
// @Param assignment body dto.AssignRequest true "Assignment"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 400 {object} dto.ErrorResponse "Workplace cannot receive assignments"
// @Failure 404 {object} dto.ErrorResponse "Workplace not found"
// @Security BearerAuth
// @Router /assignment [post]
func (h *assignmentHandler) assign(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		respondBindError(c, err)
		return
	}
	assignment, err := h.assignmentService.Assign(c.Request.Context(), req.EmployeeID, req.WorkplaceID, date)
	if err != nil {
		respondError(c, err, "Failed to assign employee")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Employee assigned",
		slog.Int64("employee_id", req.EmployeeID),
		slog.Int64("workplace_id", req.WorkplaceID),
		slog.String("date", req.Date))
	c.JSON(http.StatusOK, dto.ToAssignmentResponse(assignment))
}

// unassign godoc
// @Summary Remove an assignment
// @Description Succeeds even when the employee had no assignment for the date.
// @Tags assignment
// @Produce json
// @Param employee_id query int true "Employee ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /assignment [delete]
func (h *assignmentHandler) unassign(c *gin.Context) {
	var q dto.UnassignQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	date, err := domain.ParseDate(q.Date)
	if err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.assignmentService.Unassign(c.Request.Context(), q.EmployeeID, date); err != nil {
		respondError(c, err, "Failed to remove assignment")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
