package mysql

import (
	"context"

	domain "fineract-prequalification/internal/domain/codes"

	"gorm.io/gorm"
)

type CodeRepository struct{ db *gorm.DB }

func NewCodeRepository(db *gorm.DB) *CodeRepository { return &CodeRepository{db: db} }

const codeEntriesSQL = `
SELECT c.code_name, cv.id AS value_id, cv.code_value AS label
FROM m_code c
JOIN m_code_value cv ON cv.code_id = c.id
ORDER BY c.id, cv.order_position, cv.id`

func (r *CodeRepository) All(ctx context.Context) ([]domain.Entry, error) {
	var out []domain.Entry
	res := r.db.WithContext(ctx).Raw(codeEntriesSQL).Scan(&out)
	return out, res.Error
}
