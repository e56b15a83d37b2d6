package entity

import "time"

// Client representa un cliente del negocio.
// DUI, NIT y NRC son identificadores tributarios de El Salvador; se guardan
// como texto libre (el formato solo se sugiere en el front, no se valida).
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	DUI       string
	NIT       string
	NRC       string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
