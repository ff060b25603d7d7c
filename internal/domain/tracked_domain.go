package domain

import "time"

// TrackedDomain é um domínio acompanhado pela sincronização diária
type TrackedDomain struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
