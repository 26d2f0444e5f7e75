package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/clientbook/internal/clients/domain"
)

const (
	defaultLinesPerPage = 12
	maxLinesPerPage     = 100
	defaultOrderBy      = "name"
)

var errBadParam = errors.New("invalid parameter")

// parsePageRequest reads page, linesPerPage, direction and orderBy. The
// order property itself is validated by the store.
func parsePageRequest(q url.Values) (domain.PageRequest, error) {
	page, err := intParam(q, "page", 0)
	if err != nil {
		return domain.PageRequest{}, err
	}
	if page < 0 {
		return domain.PageRequest{}, fmt.Errorf("%w: page must not be negative", errBadParam)
	}

	size, err := intParam(q, "linesPerPage", defaultLinesPerPage)
	if err != nil {
		return domain.PageRequest{}, err
	}
	if size < 1 || size > maxLinesPerPage {
		return domain.PageRequest{}, fmt.Errorf("%w: linesPerPage must be between 1 and %d", errBadParam, maxLinesPerPage)
	}

	dir, ok := domain.ParseDirection(q.Get("direction"))
	if !ok {
		return domain.PageRequest{}, fmt.Errorf("%w: direction must be ASC or DESC", errBadParam)
	}

	orderBy := strings.TrimSpace(q.Get("orderBy"))
	if orderBy == "" {
		orderBy = defaultOrderBy
	}

	return domain.NewPageRequest(page, size, domain.Order{Property: orderBy, Direction: dir}), nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadParam, name)
	}
	return n, nil
}

func parseIncome(q url.Values) (float64, error) {
	raw := strings.TrimSpace(q.Get("income"))
	if raw == "" {
		return 0, fmt.Errorf("%w: income is required", errBadParam)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: income must be a number", errBadParam)
	}
	return v, nil
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: id must be a positive integer", errBadParam)
	}
	return id, nil
}
