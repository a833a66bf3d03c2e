package domain

import "time"

type Trainer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name" validate:"required"`
	Qualifications []string  `json:"qualifications,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
