package domain

import (
	"context"
	"errors"

	"github.com/gasplexhq/gasplex/pkg/db/pagination"
)

type ListRequest struct {
	Filters  map[string]string
	Page     pagination.Pagination
	BasePath string
}

type ListResponse struct {
	Items []View
	Page  *pagination.PageInfo
}

type CreateRequest struct {
	Data map[string]any
}

type UpdateRequest struct {
	ID   int64
	Data map[string]any
}

type Service interface {
	List(context.Context, ListRequest) (ListResponse, error)
	Get(context.Context, int64) (View, error)
	Create(context.Context, CreateRequest) (View, error)
	Update(context.Context, UpdateRequest) (View, error)
	Delete(context.Context, int64) error
}

var (
	ErrNotFound  = errors.New("gas cost record not found")
	ErrMissingID = errors.New("id is required for update")
)
