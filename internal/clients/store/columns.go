package store

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientbook/internal/clients/domain"
)

// TableName is shared by every driver so a database can be switched between
// the database/sql and gorm implementations.
const TableName = "tb_client"

// Columns maps the sortable Client properties to their column names.
var Columns = map[string]string{
	"id":        "id",
	"name":      "name",
	"cpf":       "cpf",
	"income":    "income",
	"birthDate": "birth_date",
	"children":  "children",
}

// OrderBy renders sort as an ORDER BY expression (without the keyword). The
// id column is appended as a tie breaker so paging is stable.
func OrderBy(sort domain.Sort) (string, error) {
	parts := make([]string, 0, len(sort)+1)
	hasID := false
	for _, o := range sort {
		col, ok := Columns[o.Property]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidSort, o.Property)
		}
		dir := domain.Asc
		if o.Direction == domain.Desc {
			dir = domain.Desc
		}
		hasID = hasID || col == "id"
		parts = append(parts, col+" "+string(dir))
	}
	if !hasID {
		parts = append(parts, "id ASC")
	}
	return strings.Join(parts, ", "), nil
}

// CheckPageRequest rejects negative page indexes and non-positive sizes.
func CheckPageRequest(req domain.PageRequest) error {
	if req.Page < 0 || req.Size < 1 {
		return fmt.Errorf("%w: page=%d size=%d", ErrInvalidPage, req.Page, req.Size)
	}
	return nil
}

// OffsetInRange reports whether req.Offset() fits in an int. Requests past
// that point cannot address any row.
func OffsetInRange(req domain.PageRequest) bool {
	return req.Size > 0 && req.Page <= math.MaxInt/req.Size
}

// timestampLayout is fixed width so stored values sort lexically in time order
// and keep full nanosecond precision.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTimestamp renders t in UTC for storage.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ParseTimestamp reverses FormatTimestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}
