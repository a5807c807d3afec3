package checklist

import (
	"errors"
	"time"

	"fineract-prequalification/internal/domain/policy"
)

var ErrDataIntegrity = errors.New("checklist data integrity violation")

// ValidationType tells whether a category applies to the whole group or to each member.
type ValidationType int

const (
	ValidationTypeGroup      ValidationType = 1
	ValidationTypeIndividual ValidationType = 2
)

type PrequalificationType string

const (
	TypeGroup      PrequalificationType = "GROUP"
	TypeIndividual PrequalificationType = "INDIVIDUAL"
)

// Table: checklist_categories
type Category struct {
	ID       int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Code     string         `gorm:"column:code;size:100;not null;uniqueIndex"`
	Name     string         `gorm:"column:name;size:255"`
	TypeEnum ValidationType `gorm:"column:type_enum;not null"`
}

func (Category) TableName() string { return "checklist_categories" }

func (c Category) Policy() policy.Category { return policy.Category(c.Code) }

// Table: checklist_decision_making (loan product -> category)
type Decision struct {
	ID         int64 `gorm:"column:id;primaryKey;autoIncrement"`
	CategoryID int64 `gorm:"column:category_id;not null;index"`
	ProductID  int64 `gorm:"column:product_id;not null;index"`
}

func (Decision) TableName() string { return "checklist_decision_making" }

// Table: m_checklist_validation_result
type Result struct {
	ID                   int64                `gorm:"column:id;primaryKey;autoIncrement"`
	PrequalificationID   int64                `gorm:"column:prequalification_id;not null;index"`
	CategoryID           int64                `gorm:"column:category_id;not null"`
	MemberID             *int64               `gorm:"column:member_id"`
	ClientID             *int64               `gorm:"column:client_id"`
	PrequalificationType PrequalificationType `gorm:"column:prequalification_type;size:16;not null"`
	ValidationColor      policy.Verdict       `gorm:"column:validation_color;size:16;not null"`
	CreatedBy            string               `gorm:"column:created_by;size:100"`
	CreatedAt            time.Time            `gorm:"column:created_at;autoCreateTime"`
}

func (Result) TableName() string { return "m_checklist_validation_result" }

// ResultView is a result row joined with its category.
type ResultView struct {
	ID                   int64                `gorm:"column:id" json:"id"`
	PrequalificationID   int64                `gorm:"column:prequalification_id" json:"prequalification_id"`
	CategoryID           int64                `gorm:"column:category_id" json:"category_id"`
	CategoryCode         string               `gorm:"column:category_code" json:"category_code"`
	CategoryName         string               `gorm:"column:category_name" json:"category_name"`
	MemberID             *int64               `gorm:"column:member_id" json:"member_id,omitempty"`
	ClientID             *int64               `gorm:"column:client_id" json:"client_id,omitempty"`
	PrequalificationType PrequalificationType `gorm:"column:prequalification_type" json:"prequalification_type"`
	ValidationColor      policy.Verdict       `gorm:"column:validation_color" json:"validation_color"`
	CreatedBy            string               `gorm:"column:created_by" json:"created_by"`
	CreatedAt            time.Time            `gorm:"column:created_at" json:"created_at"`
}
