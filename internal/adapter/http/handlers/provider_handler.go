package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supplier_report/internal/adapter/http/dto/response"
	"supplier_report/internal/logger"
	"supplier_report/internal/usecase"
	"supplier_report/pkg"
)

type ProviderHandler struct {
	usecase usecase.IProviderUseCase
}

func NewProviderHandler(uc usecase.IProviderUseCase) *ProviderHandler {
	return &ProviderHandler{usecase: uc}
}

// ListProviders godoc
// @Summary  Providers available to the payment report
// @Tags     providers
// @Produce  json
// @Success  200  {object}  response.ProvidersResponse
// @Router   /v1/providers [get]
func (h *ProviderHandler) ListProviders(c *gin.Context) {
	providers, err := h.usecase.ListProviders(c.Request.Context())
	if err != nil {
		logger.WithContext(c.Request.Context()).Error().Err(err).Msg("list providers failed")
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProviders(providers))
}
