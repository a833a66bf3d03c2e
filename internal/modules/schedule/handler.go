package schedule

import (
	"errors"
	"net/http"
	"time"

	"fitsync/internal/domain"
	"fitsync/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	session, err := h.service.CreateSession(c.Request.Context(), req)
	if err != nil {
		writeScheduleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"session": session})
}

func (h *Handler) UpdateSession(c *gin.Context) {
	var patch SessionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	session, err := h.service.UpdateSession(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeScheduleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": session})
}

func (h *Handler) DeleteSession(c *gin.Context) {
	id, err := h.service.DeleteSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeScheduleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted_id": id})
}

func (h *Handler) GetSession(c *gin.Context) {
	session, err := h.service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeScheduleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": session})
}

func (h *Handler) ListLocationSessions(c *gin.Context) {
	from := time.Now()
	if raw := c.Query("from"); raw != "" {
		parsed, err := parseTimeParam(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid from timestamp")
			return
		}
		from = parsed
	}

	to := from.AddDate(0, 0, 7)
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseTimeParam(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid to timestamp")
			return
		}
		to = parsed
	}

	seq, err := h.service.QuerySessions(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	sessions := make([]domain.ClassSession, 0)
	for s := range seq {
		sessions = append(sessions, s)
	}
	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) RecordBooking(c *gin.Context) {
	session, err := h.service.RecordBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeScheduleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": session})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	session, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeScheduleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": session})
}

func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func writeScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid session data")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Session, location or trainer not found")
	case errors.Is(err, ErrTrainerDoubleBooked):
		response.Error(c, http.StatusConflict, "TRAINER_DOUBLE_BOOKED", "Trainer already has an overlapping session")
	case errors.Is(err, ErrOutsideOperatingHours):
		response.Error(c, http.StatusConflict, "OUTSIDE_OPERATING_HOURS", "Session falls outside location operating hours")
	case errors.Is(err, ErrCapacityViolation):
		response.Error(c, http.StatusConflict, "CAPACITY_VIOLATION", "Capacity cannot drop below booked count")
	case errors.Is(err, ErrSessionFull):
		response.Error(c, http.StatusConflict, "SESSION_FULL", "Session is fully booked")
	case errors.Is(err, ErrBookingUnderflow):
		response.Error(c, http.StatusConflict, "BOOKING_UNDERFLOW", "Session has no bookings to cancel")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected scheduling failure")
	}
}
