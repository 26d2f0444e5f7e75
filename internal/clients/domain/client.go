package domain

import "time"

// Client is the persisted customer record. ID is assigned by the store on
// first save and never changes afterwards.
type Client struct {
	ID        int64
	Name      string
	Cpf       string // Brazilian tax id, stored as given
	Income    float64
	BirthDate time.Time
	Children  int
}

// ClientDTO is the detached form of a Client handed across the service
// boundary. It mirrors Client field for field.
type ClientDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Cpf       string    `json:"cpf"`
	Income    float64   `json:"income"`
	BirthDate time.Time `json:"birthDate"`
	Children  int       `json:"children"`
}

// ToDTO copies every field of c into a new ClientDTO.
func (c Client) ToDTO() ClientDTO {
	return ClientDTO{
		ID:        c.ID,
		Name:      c.Name,
		Cpf:       c.Cpf,
		Income:    c.Income,
		BirthDate: c.BirthDate,
		Children:  c.Children,
	}
}

// ToEntity copies every field of d into a new Client.
func (d ClientDTO) ToEntity() Client {
	return Client{
		ID:        d.ID,
		Name:      d.Name,
		Cpf:       d.Cpf,
		Income:    d.Income,
		BirthDate: d.BirthDate,
		Children:  d.Children,
	}
}
