package clientsdk

import (
	"net/url"
	"strconv"
	"time"
)

// Client is the JSON form of a client record.
type Client struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Ana Paula"`
	Cpf       string    `json:"cpf" example:"41412414142124"`
	Income    float64   `json:"income" example:"1354.0"`
	BirthDate time.Time `json:"birthDate" example:"1994-11-05T07:00:00Z"`
	Children  int       `json:"children" example:"4"`
}

// SortOrder is one ordering criterion of a page.
type SortOrder struct {
	Property  string `json:"property" example:"name"`
	Direction string `json:"direction" example:"ASC"`
}

// Page is one page of clients. Number is zero based.
type Page struct {
	Content          []Client    `json:"content"`
	Number           int         `json:"number"`
	Size             int         `json:"size"`
	TotalElements    int64       `json:"totalElements"`
	TotalPages       int         `json:"totalPages"`
	NumberOfElements int         `json:"numberOfElements"`
	First            bool        `json:"first"`
	Last             bool        `json:"last"`
	Empty            bool        `json:"empty"`
	Sort             []SortOrder `json:"sort"`
}

// PageParams selects a page. Zero fields are left to the server defaults
// (page 0, 12 lines, ordered by name ascending).
type PageParams struct {
	Page         int
	LinesPerPage int
	Direction    string
	OrderBy      string
}

func (p PageParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.LinesPerPage > 0 {
		v.Set("linesPerPage", strconv.Itoa(p.LinesPerPage))
	}
	if p.Direction != "" {
		v.Set("direction", p.Direction)
	}
	if p.OrderBy != "" {
		v.Set("orderBy", p.OrderBy)
	}
	return v
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	// Status is "ok" or "degraded".
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}
