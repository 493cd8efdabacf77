package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jornada-registro-api/internal/response"
	"jornada-registro-api/internal/service"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// GetActive godoc
// @Summary      Consultar el programa de conferencias
// @Description  Devuelve las conferencias activas ordenadas por hora de inicio
// @Tags         activities
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.ActivityResponse}
// @Failure      500 {object} response.ErrorResponse "Error del servidor"
// @Router       /activities [get]
func (h *ActivityHandler) GetActive(c *gin.Context) {
	activities, err := h.activityService.GetActive(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, activities)
}
