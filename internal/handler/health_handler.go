package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Community_Board/internal/service"
)

type HealthHandler struct {
	svc *service.HealthService
}

func NewHealthHandler(svc *service.HealthService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Community backend is running"})
}

// Diagnose 报告存储连通性，始终返回 200
func (h *HealthHandler) Diagnose(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Report(c.Request.Context()))
}
