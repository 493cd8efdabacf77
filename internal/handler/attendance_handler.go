package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jornada-registro-api/internal/dto"
	"jornada-registro-api/internal/response"
	"jornada-registro-api/internal/service"
)

type AttendanceHandler struct {
	attendanceService service.AttendanceService
}

func NewAttendanceHandler(attendanceService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// Confirm godoc
// @Summary      Registrar asistencia
// @Description  Registra la asistencia de un participante a una conferencia dentro de su ventana horaria
// @Tags         attendances
// @Accept       json
// @Produce      json
// @Param        request body dto.ConfirmAttendanceRequest true "Correo y conferencia"
// @Success      201 {object} response.SuccessResponse{data=dto.AttendanceResponse}
// @Failure      403 {object} response.ErrorResponse "Fuera de la ventana horaria"
// @Failure      404 {object} response.ErrorResponse "Participante o conferencia no encontrados"
// @Failure      409 {object} response.ErrorResponse "Asistencia ya registrada"
// @Failure      422 {object} response.ErrorResponse "Datos inválidos"
// @Router       /attendances [post]
func (h *AttendanceHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendFieldErrors(c, http.StatusUnprocessableEntity, "Datos inválidos", dto.FieldErrors(err))
		return
	}

	attendance, err := h.attendanceService.Confirm(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, attendance)
}

// ListByEmail godoc
// @Summary      Consultar asistencias de un participante
// @Tags         attendances
// @Produce      json
// @Param        email query string true "Correo electrónico"
// @Success      200 {object} response.SuccessResponse{data=[]dto.AttendanceDetail}
// @Failure      404 {object} response.ErrorResponse "Sin registro o sin asistencias"
// @Failure      422 {object} response.ErrorResponse "Correo no proporcionado"
// @Router       /attendances [get]
func (h *AttendanceHandler) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, "El correo electrónico es obligatorio")
		return
	}

	attendances, err := h.attendanceService.ListByEmail(c.Request.Context(), email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, attendances)
}
