// Package envelope is the uniform response wrapper returned by every catalog
// operation, over HTTP, gRPC and the CLI alike.
package envelope

import (
	"time"
)

const (
	DefaultPageLimit = 10
	GenericMessage   = "Внутренняя ошибка сервера"
	GenericCode      = "INTERNAL"
)

// Meta carries pagination details. Zero fields are omitted from JSON.
type Meta struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
	Total int `json:"total,omitempty"`
	Pages int `json:"pages,omitempty"`
}

type Response[T any] struct {
	Success   bool    `json:"success"`
	Data      *T      `json:"data"`
	Error     *string `json:"error"`
	Code      string  `json:"code,omitempty"`
	Meta      Meta    `json:"meta"`
	Timestamp string  `json:"timestamp"`
}

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

func Success[T any](data T, meta Meta) Response[T] {
	return Response[T]{
		Success:   true,
		Data:      &data,
		Meta:      meta,
		Timestamp: now().Format(time.RFC3339),
	}
}

// Failure builds an error envelope. A blank message or code is replaced by the
// generic one so no failure reaches a client without both.
func Failure[T any](message, code string, meta Meta) Response[T] {
	if message == "" {
		message = GenericMessage
	}
	if code == "" {
		code = GenericCode
	}
	return Response[T]{
		Success:   false,
		Error:     &message,
		Code:      code,
		Meta:      meta,
		Timestamp: now().Format(time.RFC3339),
	}
}

type Pagination struct {
	Page  int
	Limit int
	Skip  int
	Total int
	Pages int
}

// Paginate normalizes page/limit and derives skip and page count.
// page below 1 is clamped to 1; a non-positive limit falls back to
// defaultLimit, and to DefaultPageLimit when that is not positive either.
func Paginate(page, limit, total, defaultLimit int) Pagination {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if page < 1 {
		page = 1
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
		Total: total,
		Pages: CalculatePages(total, limit),
	}
}

// CalculatePages is ceil(total/limit), and 1 for an empty result.
func CalculatePages(total, limit int) int {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if total <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

func (p Pagination) Meta() Meta {
	return Meta{Page: p.Page, Limit: p.Limit, Total: p.Total, Pages: p.Pages}
}
