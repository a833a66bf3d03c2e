package catalog

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/locations", h.ListLocations)
	rg.GET("/locations/:id", h.GetLocation)
	rg.GET("/trainers", h.ListTrainers)
	rg.GET("/trainers/:id", h.GetTrainer)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/locations", h.CreateLocation)
	rg.PUT("/locations/:id/hours", h.UpdateLocationHours)
	rg.POST("/trainers", h.CreateTrainer)
}
