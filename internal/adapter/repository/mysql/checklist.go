package mysql

import (
	"context"

	domain "fineract-prequalification/internal/domain/checklist"

	"gorm.io/gorm"
)

const resultBatchSize = 100

type ChecklistRepository struct{ db *gorm.DB }

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository { return &ChecklistRepository{db: db} }

const categoriesForProductSQL = `
SELECT cc.id, cc.code, cc.name, cc.type_enum
FROM checklist_categories cc
JOIN checklist_decision_making cdm ON cdm.category_id = cc.id
JOIN m_product_loan lp ON lp.id = cdm.product_id
WHERE lp.id = ? AND cc.type_enum = ?
ORDER BY cc.id`

func (r *ChecklistRepository) CategoriesForProduct(ctx context.Context, productID int64, vt domain.ValidationType) ([]domain.Category, error) {
	var out []domain.Category
	res := r.db.WithContext(ctx).Raw(categoriesForProductSQL, productID, vt).Scan(&out)
	return out, res.Error
}

func (r *ChecklistRepository) DeleteResults(ctx context.Context, prequalificationID int64) error {
	return r.db.WithContext(ctx).
		Where("prequalification_id = ?", prequalificationID).
		Delete(&domain.Result{}).Error
}

func (r *ChecklistRepository) CreateResults(ctx context.Context, rs []domain.Result) error {
	if len(rs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(rs, resultBatchSize).Error
}

const listResultsSQL = `
SELECT r.id, r.prequalification_id, r.category_id, cc.code AS category_code, cc.name AS category_name,
       r.member_id, r.client_id, r.prequalification_type, r.validation_color, r.created_by, r.created_at
FROM m_checklist_validation_result r
JOIN checklist_categories cc ON cc.id = r.category_id
WHERE r.prequalification_id = ?
ORDER BY cc.type_enum, r.category_id, r.member_id`

func (r *ChecklistRepository) ListResults(ctx context.Context, prequalificationID int64) ([]domain.ResultView, error) {
	var out []domain.ResultView
	res := r.db.WithContext(ctx).Raw(listResultsSQL, prequalificationID).Scan(&out)
	return out, res.Error
}
