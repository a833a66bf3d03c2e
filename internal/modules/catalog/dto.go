package catalog

import "fitsync/internal/domain"

type CreateLocationRequest struct {
	Name    string                `json:"name" binding:"required"`
	Address string                `json:"address"`
	Hours   domain.OperatingHours `json:"hours"`
}

type UpdateHoursRequest struct {
	Hours domain.OperatingHours `json:"hours" binding:"required"`
}

type CreateTrainerRequest struct {
	Name           string   `json:"name" binding:"required"`
	Qualifications []string `json:"qualifications"`
}
