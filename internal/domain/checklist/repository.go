package checklist

import "context"

type Repository interface {
	// CategoriesForProduct returns the categories configured for a loan product
	// and validation type, ordered by id.
	CategoriesForProduct(ctx context.Context, productID int64, vt ValidationType) ([]Category, error)

	DeleteResults(ctx context.Context, prequalificationID int64) error
	CreateResults(ctx context.Context, rs []Result) error
	ListResults(ctx context.Context, prequalificationID int64) ([]ResultView, error)
}
