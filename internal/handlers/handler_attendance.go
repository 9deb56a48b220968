package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := &attendanceHandler{attendanceService: attendanceService}

	attendance := rg.Group("/attendance")
	{
		attendance.GET("", h.getAttendanceSheet)
		attendance.POST("", h.recordAttendance)
	}
}

// getAttendanceSheet godoc
// @Summary Attendance sheet for a date
// @Description Every active, shown employee with attendance resolved; missing rows read as present on the early shift.
// @Tags attendance
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} dto.AttendanceEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attendance [get]
func (h *attendanceHandler) getAttendanceSheet(c *gin.Context) {
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
	view, err := h.attendanceService.GetAttendanceSheet(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "Failed to load attendance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceEntryResponses(view))
}

// recordAttendance godoc
// @Summary Record attendance
// @Description Upserts the attendance row of an employee for a date.
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance body dto.RecordAttendanceRequest true "Attendance"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attendance [post]
func (h *attendanceHandler) recordAttendance(c *gin.Context) {
	var req dto.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	attendance, err := h.attendanceService.RecordAttendance(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to record attendance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(attendance))
}
