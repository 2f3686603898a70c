package delivery

import (
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type InvestmentHandler struct {
	useCase usecase.InvestmentUseCase
	log     *logrus.Logger
}

func NewInvestmentHandler(uc usecase.InvestmentUseCase, logger *logrus.Logger) *InvestmentHandler {
	return &InvestmentHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *InvestmentHandler) RegisterRoutes(router gin.IRouter) {
	investments := router.Group("/investments")
	{
		investments.POST("/projection", h.ProjectInvestment)
	}
}

func (h *InvestmentHandler) ProjectInvestment(c *gin.Context) {
	var req domain.InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for investment projection: %v", err)
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.useCase.Project(req)
	if err != nil {
		h.log.Warnf("Failed to project investment: %v", err)
		c.Status(statusForError(err))
		return
	}

	c.JSON(http.StatusOK, result)
}
