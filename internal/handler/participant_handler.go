package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jornada-registro-api/internal/dto"
	"jornada-registro-api/internal/response"
	"jornada-registro-api/internal/service"
)

type ParticipantHandler struct {
	participantService service.ParticipantService
}

func NewParticipantHandler(participantService service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
	}
}

// Register godoc
// @Summary      Registrar participante
// @Description  Registra a un asistente de la Jornada; el correo y el brazalete deben ser únicos
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterParticipantRequest true "Datos del participante"
// @Success      201 {object} response.SuccessResponse{data=dto.ParticipantResponse} "Registro exitoso"
// @Failure      409 {object} response.ErrorResponse "Correo o brazalete ya registrado"
// @Failure      422 {object} response.ErrorResponse "Datos inválidos"
// @Failure      500 {object} response.ErrorResponse "Error del servidor"
// @Router       /participants [post]
func (h *ParticipantHandler) Register(c *gin.Context) {
	var req dto.RegisterParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendFieldErrors(c, http.StatusUnprocessableEntity, "Datos inválidos", dto.FieldErrors(err))
		return
	}

	participant, err := h.participantService.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, participant)
}

// GetByEmail godoc
// @Summary      Consultar participante por correo
// @Tags         participants
// @Produce      json
// @Param        email query string true "Correo electrónico"
// @Success      200 {object} response.SuccessResponse{data=dto.ParticipantResponse}
// @Failure      404 {object} response.ErrorResponse "Participante no encontrado"
// @Failure      422 {object} response.ErrorResponse "Correo no proporcionado"
// @Router       /participants/by-email [get]
func (h *ParticipantHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, "El correo electrónico es obligatorio")
		return
	}

	participant, err := h.participantService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, participant)
}

// CheckEmail godoc
// @Summary      Verificar disponibilidad de un correo
// @Description  Sondeo en vivo del formulario de registro
// @Tags         participants
// @Produce      json
// @Param        email query string true "Correo electrónico"
// @Success      200 {object} response.SuccessResponse{data=dto.UniqueCheckResponse}
// @Failure      422 {object} response.ErrorResponse "Correo no proporcionado"
// @Router       /participants/check-email [get]
func (h *ParticipantHandler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, "El correo electrónico es obligatorio")
		return
	}

	result, err := h.participantService.CheckEmailUnique(c.Request.Context(), email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CheckBracelet godoc
// @Summary      Verificar disponibilidad de un brazalete
// @Tags         participants
// @Produce      json
// @Param        brazalete query string true "Número de brazalete"
// @Success      200 {object} response.SuccessResponse{data=dto.UniqueCheckResponse}
// @Failure      422 {object} response.ErrorResponse "Brazalete no proporcionado"
// @Router       /participants/check-bracelet [get]
func (h *ParticipantHandler) CheckBracelet(c *gin.Context) {
	bracelet := c.Query("brazalete")
	if bracelet == "" {
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, "El número de brazalete es obligatorio")
		return
	}

	result, err := h.participantService.CheckBraceletUnique(c.Request.Context(), bracelet)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// AssignBracelet godoc
// @Summary      Asignar brazalete
// @Description  Asigna el brazalete físico a un participante registrado; repetir la misma asignación es idempotente
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request body dto.AssignBraceletRequest true "Correo y brazalete"
// @Success      200 {object} response.SuccessResponse{data=dto.ParticipantResponse}
// @Failure      404 {object} response.ErrorResponse "Participante no encontrado"
// @Failure      409 {object} response.ErrorResponse "Brazalete en conflicto"
// @Failure      422 {object} response.ErrorResponse "Datos inválidos"
// @Router       /participants/bracelet [put]
func (h *ParticipantHandler) AssignBracelet(c *gin.Context) {
	var req dto.AssignBraceletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendFieldErrors(c, http.StatusUnprocessableEntity, "Datos inválidos", dto.FieldErrors(err))
		return
	}

	participant, err := h.participantService.AssignBracelet(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, participant)
}
