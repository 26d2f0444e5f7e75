package domain

import "strings"

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection accepts "asc"/"desc" in any case. Empty input yields Asc.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(Asc):
		return Asc, true
	case string(Desc):
		return Desc, true
	default:
		return "", false
	}
}

// Order sorts by a single Client property (e.g. "name", "birthDate").
type Order struct {
	Property  string
	Direction Direction
}

type Sort []Order

// PageRequest selects one page of a result set. Stores receive it as-is.
type PageRequest struct {
	Page int // zero based
	Size int
	Sort Sort
}

// NewPageRequest builds a request for page with size elements, ordered by sort.
func NewPageRequest(page, size int, sort ...Order) PageRequest {
	return PageRequest{Page: page, Size: size, Sort: sort}
}

// Offset is the number of elements that precede this page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is an ordered slice of a larger result set together with the request
// that produced it and the total element count.
type Page[T any] struct {
	Content       []T
	Request       PageRequest
	TotalElements int64
}

func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{Content: content, Request: req, TotalElements: total}
}

// NumberOfElements is the count actually present on this page.
func (p Page[T]) NumberOfElements() int { return len(p.Content) }

func (p Page[T]) TotalPages() int {
	if p.Request.Size <= 0 {
		return 1
	}
	size := int64(p.Request.Size)
	return int((p.TotalElements + size - 1) / size)
}

func (p Page[T]) IsFirst() bool { return p.Request.Page == 0 }

func (p Page[T]) IsLast() bool { return p.Request.Page >= p.TotalPages()-1 }

func (p Page[T]) IsEmpty() bool { return len(p.Content) == 0 }

// MapPage converts every element of p with fn, keeping order and metadata.
func MapPage[A, B any](p Page[A], fn func(A) B) Page[B] {
	out := make([]B, len(p.Content))
	for i, v := range p.Content {
		out[i] = fn(v)
	}
	return Page[B]{Content: out, Request: p.Request, TotalElements: p.TotalElements}
}
