package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jornada-registro-api/internal/response"
	"jornada-registro-api/internal/service"
)

type CertificateHandler struct {
	certificateService service.CertificateService
}

func NewCertificateHandler(certificateService service.CertificateService) *CertificateHandler {
	return &CertificateHandler{
		certificateService: certificateService,
	}
}

// Check godoc
// @Summary      Verificar elegibilidad de constancia
// @Description  Devuelve las asistencias del participante y si puede descargar su constancia
// @Tags         certificates
// @Produce      json
// @Param        email query string true "Correo electrónico"
// @Success      200 {object} response.SuccessResponse{data=dto.CertificateCheckResponse}
// @Failure      404 {object} response.ErrorResponse "Participante no encontrado"
// @Failure      422 {object} response.ErrorResponse "Correo no proporcionado"
// @Router       /certificates/check [get]
func (h *CertificateHandler) Check(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, "El correo electrónico es obligatorio")
		return
	}

	result, err := h.certificateService.Check(c.Request.Context(), email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// Download godoc
// @Summary      Descargar constancia en PDF
// @Description  Genera y descarga la constancia de participación como archivo adjunto
// @Tags         certificates
// @Produce      application/pdf
// @Param        email query string true "Correo electrónico"
// @Success      200 {file} file "PDF de la constancia"
// @Failure      403 {object} response.ErrorResponse "Sin asistencias registradas"
// @Failure      404 {object} response.ErrorResponse "Participante no encontrado"
// @Failure      422 {object} response.ErrorResponse "Correo no proporcionado"
// @Router       /certificates/download [get]
func (h *CertificateHandler) Download(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, "El correo electrónico es obligatorio")
		return
	}

	certificate, err := h.certificateService.Render(c.Request.Context(), email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, certificate.Filename))
	c.Data(http.StatusOK, "application/pdf", certificate.PDF)
}
