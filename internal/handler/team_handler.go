package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jornada-registro-api/internal/dto"
	"jornada-registro-api/internal/response"
	"jornada-registro-api/internal/service"
)

type TeamHandler struct {
	teamService service.TeamService
}

func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// Create godoc
// @Summary      Crear equipo del rally
// @Description  Crea un equipo de seis integrantes (capitán más cinco); la creación es atómica
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTeamRequest true "Nombre, capitán y miembros"
// @Success      201 {object} response.SuccessResponse{data=dto.CreateTeamResponse}
// @Failure      409 {object} response.ErrorResponse "Nombre de equipo en uso"
// @Failure      422 {object} response.ErrorResponse "Integrantes inválidos"
// @Failure      500 {object} response.ErrorResponse "Error del servidor"
// @Router       /teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendFieldErrors(c, http.StatusUnprocessableEntity, "Datos inválidos", dto.FieldErrors(err))
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, team)
}

// GetAll godoc
// @Summary      Listar equipos
// @Tags         teams
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.TeamResponse}
// @Router       /teams [get]
func (h *TeamHandler) GetAll(c *gin.Context) {
	teams, err := h.teamService.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, teams)
}

// GetByID godoc
// @Summary      Consultar un equipo
// @Tags         teams
// @Produce      json
// @Param        teamId path string true "ID del equipo (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.TeamResponse}
// @Failure      404 {object} response.ErrorResponse "Equipo no encontrado"
// @Failure      422 {object} response.ErrorResponse "ID inválido"
// @Router       /teams/{teamId} [get]
func (h *TeamHandler) GetByID(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, "ID de equipo inválido")
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), teamID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, team)
}

// GetByParticipant godoc
// @Summary      Consultar el equipo de un participante
// @Description  Devuelve el equipo al que pertenece el participante, o un equipo nulo si no tiene
// @Tags         teams
// @Produce      json
// @Param        email query string true "Correo electrónico"
// @Success      200 {object} response.SuccessResponse{data=dto.TeamLookupResponse}
// @Failure      404 {object} response.ErrorResponse "Participante no encontrado"
// @Failure      422 {object} response.ErrorResponse "Correo no proporcionado"
// @Router       /teams/by-participant [get]
func (h *TeamHandler) GetByParticipant(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, "El correo electrónico es obligatorio")
		return
	}

	lookup, err := h.teamService.GetByParticipantEmail(c.Request.Context(), email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, lookup)
}

// CheckName godoc
// @Summary      Verificar disponibilidad de un nombre de equipo
// @Tags         teams
// @Produce      json
// @Param        nombre query string true "Nombre propuesto"
// @Success      200 {object} response.SuccessResponse{data=dto.TeamNameCheckResponse}
// @Failure      422 {object} response.ErrorResponse "Nombre no proporcionado"
// @Router       /teams/check-name [get]
func (h *TeamHandler) CheckName(c *gin.Context) {
	name := c.Query("nombre")
	if name == "" {
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, "El nombre del equipo es obligatorio")
		return
	}

	result, err := h.teamService.CheckName(c.Request.Context(), name)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CheckParticipant godoc
// @Summary      Verificar si un participante puede unirse a un equipo
// @Tags         teams
// @Produce      json
// @Param        email query string true "Correo electrónico"
// @Success      200 {object} response.SuccessResponse{data=dto.TeamParticipantCheckResponse}
// @Failure      422 {object} response.ErrorResponse "Correo no proporcionado"
// @Router       /teams/check-participant [get]
func (h *TeamHandler) CheckParticipant(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, "El correo electrónico es obligatorio")
		return
	}

	result, err := h.teamService.CheckParticipant(c.Request.Context(), email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
