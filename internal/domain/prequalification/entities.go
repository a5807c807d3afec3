package prequalification

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("prequalification not found")
	ErrMemberNotFound = errors.New("prequalification member not found")
)

type Status int

const (
	StatusBlacklistChecked  Status = 100
	StatusBlacklistRejected Status = 200
	StatusConsentAdded      Status = 300
	StatusBureauChecked     Status = 400
	StatusHardPolicyChecked Status = 500
	StatusTimeExpired       Status = 600
	StatusCompleted         Status = 700
)

var statusCodes = map[Status]string{
	StatusBlacklistChecked:  "BLACKLIST_CHECKED",
	StatusBlacklistRejected: "BLACKLIST_REJECTED",
	StatusConsentAdded:      "CONSENT_ADDED",
	StatusBureauChecked:     "BUREAU_CHECKED",
	StatusHardPolicyChecked: "HARD_POLICY_CHECKED",
	StatusTimeExpired:       "TIME_EXPIRED",
	StatusCompleted:         "COMPLETED",
}

func (s Status) String() string {
	if c, ok := statusCodes[s]; ok {
		return c
	}
	return "UNKNOWN"
}

// Table: m_prequalification_group
type Group struct {
	ID                     int64     `gorm:"column:id;primaryKey;autoIncrement"`
	PrequalificationNumber string    `gorm:"column:prequalification_number;size:64;not null;uniqueIndex"`
	GroupName              string    `gorm:"column:group_name;size:255"`
	ProductID              int64     `gorm:"column:product_id;not null;index"`
	ParentID               *int64    `gorm:"column:parent_id"`
	Status                 Status    `gorm:"column:status;not null"`
	CreatedBy              string    `gorm:"column:created_by;size:100"`
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt              time.Time `gorm:"column:updated_at;autoUpdateTime"`
	Members                []Member  `gorm:"foreignKey:GroupID"`
}

func (Group) TableName() string { return "m_prequalification_group" }

// IsRecredit reports whether the group renews a previous prequalification.
func (g *Group) IsRecredit() bool { return g.ParentID != nil }

func (g *Group) TotalRequested() decimal.Decimal {
	total := decimal.Zero
	for _, m := range g.Members {
		total = total.Add(m.RequestedAmount)
	}
	return total
}

// Transition moves the group to a new status and returns the log row to append.
func (g *Group) Transition(to Status, actor, comments string) *StatusLog {
	from := g.Status
	g.Status = to
	return &StatusLog{
		PrequalificationID: g.ID,
		FromStatus:         from,
		ToStatus:           to,
		UpdatedBy:          actor,
		Comments:           comments,
	}
}

// Table: m_prequalification_group_members
type Member struct {
	ID                      int64           `gorm:"column:id;primaryKey;autoIncrement"`
	GroupID                 int64           `gorm:"column:group_id;not null;index"`
	ClientID                *int64          `gorm:"column:client_id;index"`
	Name                    string          `gorm:"column:name;size:255"`
	DPI                     string          `gorm:"column:dpi;size:32;index"`
	DateOfBirth             time.Time       `gorm:"column:dob;type:date"`
	RequestedAmount         decimal.Decimal `gorm:"column:requested_amount;type:decimal(19,6);not null"`
	WorkWithPuente          bool            `gorm:"column:work_with_puente"`
	BuroCheckClassification *string         `gorm:"column:buro_check_classification;size:16"`
	CreatedAt               time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt               time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Member) TableName() string { return "m_prequalification_group_members" }

// Table: m_prequalification_status_log (append-only)
type StatusLog struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement"`
	PrequalificationID int64     `gorm:"column:prequalification_id;not null;index"`
	FromStatus         Status    `gorm:"column:from_status;not null"`
	ToStatus           Status    `gorm:"column:to_status;not null"`
	UpdatedBy          string    `gorm:"column:updated_by;size:100"`
	Comments           string    `gorm:"column:comments;size:500"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (StatusLog) TableName() string { return "m_prequalification_status_log" }

// MemberView is a member joined with its client record and code-value references.
type MemberView struct {
	MemberID          int64           `gorm:"column:member_id"`
	ClientID          *int64          `gorm:"column:client_id"`
	Name              string          `gorm:"column:name"`
	DPI               string          `gorm:"column:dpi"`
	DateOfBirth       time.Time       `gorm:"column:date_of_birth"`
	RequestedAmount   decimal.Decimal `gorm:"column:requested_amount"`
	WorkWithPuente    bool            `gorm:"column:work_with_puente"`
	GenderCodeValueID *int64          `gorm:"column:gender_cv_id"`
	AreaCodeValueID   *int64          `gorm:"column:area_cv_id"`
}
