package mysql

import (
	"context"

	domain "fineract-prequalification/internal/domain/prequalification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PrequalificationRepository struct{ db *gorm.DB }

func NewPrequalificationRepository(db *gorm.DB) *PrequalificationRepository {
	return &PrequalificationRepository{db: db}
}

func membersByID(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }

func (r *PrequalificationRepository) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	var out domain.Group
	res := r.db.WithContext(ctx).
		Preload("Members", membersByID).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *PrequalificationRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Group, error) {
	var out domain.Group
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Members", membersByID).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *PrequalificationRepository) SaveStatus(ctx context.Context, g *domain.Group) error {
	return r.db.WithContext(ctx).
		Model(&domain.Group{ID: g.ID}).
		Update("status", g.Status).Error
}

func (r *PrequalificationRepository) SaveBureauClassification(ctx context.Context, memberID int64, classification string) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Member{ID: memberID}).
		Update("buro_check_classification", classification)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

// memberViewSQL yields one row per member; a client with several contact
// records contributes its oldest one.
const memberViewSQL = `
SELECT m.id AS member_id, m.client_id, m.name, m.dpi, m.dob AS date_of_birth,
       m.requested_amount, m.work_with_puente, c.gender_cv_id, ci.area_cv_id
FROM m_prequalification_group_members m
LEFT JOIN m_client c ON c.id = m.client_id
LEFT JOIN (
    SELECT client_id, MIN(id) AS id FROM m_client_contact_info GROUP BY client_id
) first_ci ON first_ci.client_id = c.id
LEFT JOIN m_client_contact_info ci ON ci.id = first_ci.id
WHERE m.group_id = ?
ORDER BY m.id`

func (r *PrequalificationRepository) MemberViews(ctx context.Context, groupID int64) ([]domain.MemberView, error) {
	var out []domain.MemberView
	res := r.db.WithContext(ctx).Raw(memberViewSQL, groupID).Scan(&out)
	return out, res.Error
}

func (r *PrequalificationRepository) AppendStatusLog(ctx context.Context, l *domain.StatusLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *PrequalificationRepository) StatusLogs(ctx context.Context, prequalificationID int64) ([]domain.StatusLog, error) {
	var out []domain.StatusLog
	res := r.db.WithContext(ctx).
		Where("prequalification_id = ?", prequalificationID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
