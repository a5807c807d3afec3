package codes

import (
	"context"
	"maps"
)

// Logical code-list names.
const (
	ListGender = "Gender"
	ListArea   = "Area"
)

// Entry is one code value of a named code list.
type Entry struct {
	CodeName string `gorm:"column:code_name"`
	ValueID  int64  `gorm:"column:value_id"`
	Label    string `gorm:"column:label"`
}

type Repository interface {
	All(ctx context.Context) ([]Entry, error)
}

// Registry is an immutable code-list lookup, loaded once at startup.
type Registry struct {
	lists map[string]map[int64]string
}

func NewRegistry(entries []Entry) *Registry {
	lists := make(map[string]map[int64]string)
	for _, e := range entries {
		if lists[e.CodeName] == nil {
			lists[e.CodeName] = make(map[int64]string)
		}
		lists[e.CodeName][e.ValueID] = e.Label
	}
	return &Registry{lists: lists}
}

func Load(ctx context.Context, repo Repository) (*Registry, error) {
	entries, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return NewRegistry(entries), nil
}

// Label resolves a code-value id; a nil id or an unknown value yields "".
func (r *Registry) Label(list string, id *int64) string {
	if r == nil || id == nil {
		return ""
	}
	return r.lists[list][*id]
}

// List returns a copy of one code list.
func (r *Registry) List(list string) map[int64]string {
	return maps.Clone(r.lists[list])
}
