package schedule

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the read and booking surface available to any
// authenticated role.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sessions/:id", h.GetSession)
	rg.GET("/locations/:id/sessions", h.ListLocationSessions)
	rg.POST("/sessions/:id/bookings", h.RecordBooking)
	rg.DELETE("/sessions/:id/bookings", h.CancelBooking)
}

// RegisterAdminRoutes wires session lifecycle management, guarded upstream
// by the admin/reception role middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.CreateSession)
	rg.PATCH("/sessions/:id", h.UpdateSession)
	rg.DELETE("/sessions/:id", h.DeleteSession)
}
