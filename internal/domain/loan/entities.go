package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("loan not found")

type Status int

const (
	StatusSubmitted          Status = 100
	StatusApproved           Status = 200
	StatusActive             Status = 300
	StatusTransferInProgress Status = 303
	StatusTransferOnHold     Status = 304
	StatusWithdrawn          Status = 400
	StatusRejected           Status = 500
	StatusClosed             Status = 600
	StatusWrittenOff         Status = 601
	StatusRescheduled        Status = 602
	StatusOverpaid           Status = 700
)

// IsClosed reports whether the loan's obligations are met.
func (s Status) IsClosed() bool { return s == StatusClosed || s == StatusOverpaid }

// Transaction processing strategies that allocate repayments to interest first.
var interestFirstProcessors = map[string]bool{
	"interest-principal-penalties-fees-order-strategy": true,
	"rbi-india-strategy": true,
}

// Table: m_loan
type Loan struct {
	ID                           int64           `gorm:"column:id;primaryKey;autoIncrement"`
	AccountNo                    string          `gorm:"column:account_no;size:20"`
	ClientID                     *int64          `gorm:"column:client_id;index"`
	ProductID                    int64           `gorm:"column:product_id"`
	Status                       Status          `gorm:"column:loan_status_id;not null"`
	LoanCounter                  int             `gorm:"column:loan_counter"`
	PrincipalAmount              decimal.Decimal `gorm:"column:principal_amount;type:decimal(19,6)"`
	AnnualNominalInterestRate    decimal.Decimal `gorm:"column:annual_nominal_interest_rate;type:decimal(19,6)"`
	DisbursedOn                  *time.Time      `gorm:"column:disbursedon_date;type:date"`
	ClosedOn                     *time.Time      `gorm:"column:closedon_date;type:date"`
	InterestRecalculationEnabled bool            `gorm:"column:interest_recalculation_enabled"`
	IsNPA                        bool            `gorm:"column:is_npa"`
	ChargedOff                   bool            `gorm:"column:is_charged_off"`
	ProcessorCode                string          `gorm:"column:loan_transaction_strategy_code;size:100"`
	MultiDisbursement            bool            `gorm:"column:allow_multiple_disbursals"`
	PrincipalDisbursed           decimal.Decimal `gorm:"column:principal_disbursed_derived;type:decimal(19,6)"`
	PrincipalRepaid              decimal.Decimal `gorm:"column:principal_repaid_derived;type:decimal(19,6)"`
	PrincipalWrittenOff          decimal.Decimal `gorm:"column:principal_writtenoff_derived;type:decimal(19,6)"`
	Installments                 []Installment   `gorm:"foreignKey:LoanID"`
}

func (Loan) TableName() string { return "m_loan" }

// Table: m_loan_repayment_schedule
type Installment struct {
	ID                   int64           `gorm:"column:id;primaryKey;autoIncrement"`
	LoanID               int64           `gorm:"column:loan_id;not null;index"`
	Number               int             `gorm:"column:installment;not null"`
	FromDate             time.Time       `gorm:"column:fromdate;type:date"`
	DueDate              time.Time       `gorm:"column:duedate;type:date;not null"`
	Principal            decimal.Decimal `gorm:"column:principal_amount;type:decimal(19,6)"`
	PrincipalCompleted   decimal.Decimal `gorm:"column:principal_completed_derived;type:decimal(19,6)"`
	PrincipalWrittenOff  decimal.Decimal `gorm:"column:principal_writtenoff_derived;type:decimal(19,6)"`
	Interest             decimal.Decimal `gorm:"column:interest_amount;type:decimal(19,6)"`
	InterestCompleted    decimal.Decimal `gorm:"column:interest_completed_derived;type:decimal(19,6)"`
	InterestWaived       decimal.Decimal `gorm:"column:interest_waived_derived;type:decimal(19,6)"`
	InterestWrittenOff   decimal.Decimal `gorm:"column:interest_writtenoff_derived;type:decimal(19,6)"`
	FeeCharges           decimal.Decimal `gorm:"column:fee_charges_amount;type:decimal(19,6)"`
	FeeChargesCompleted  decimal.Decimal `gorm:"column:fee_charges_completed_derived;type:decimal(19,6)"`
	FeeChargesWaived     decimal.Decimal `gorm:"column:fee_charges_waived_derived;type:decimal(19,6)"`
	FeeChargesWrittenOff decimal.Decimal `gorm:"column:fee_charges_writtenoff_derived;type:decimal(19,6)"`
	Penalty              decimal.Decimal `gorm:"column:penalty_charges_amount;type:decimal(19,6)"`
	PenaltyCompleted     decimal.Decimal `gorm:"column:penalty_charges_completed_derived;type:decimal(19,6)"`
	PenaltyWaived        decimal.Decimal `gorm:"column:penalty_charges_waived_derived;type:decimal(19,6)"`
	PenaltyWrittenOff    decimal.Decimal `gorm:"column:penalty_charges_writtenoff_derived;type:decimal(19,6)"`
	Completed            bool            `gorm:"column:completed_derived"`
}

func (Installment) TableName() string { return "m_loan_repayment_schedule" }

func (i Installment) PrincipalOutstanding() decimal.Decimal {
	return i.Principal.Sub(i.PrincipalCompleted).Sub(i.PrincipalWrittenOff)
}

func (i Installment) InterestOutstanding() decimal.Decimal {
	return i.Interest.Sub(i.InterestCompleted).Sub(i.InterestWaived).Sub(i.InterestWrittenOff)
}

func (i Installment) FeeOutstanding() decimal.Decimal {
	return i.FeeCharges.Sub(i.FeeChargesCompleted).Sub(i.FeeChargesWaived).Sub(i.FeeChargesWrittenOff)
}

func (i Installment) PenaltyOutstanding() decimal.Decimal {
	return i.Penalty.Sub(i.PenaltyCompleted).Sub(i.PenaltyWaived).Sub(i.PenaltyWrittenOff)
}

// History is the loan-ledger aggregate of one client used by the hard policies.
type History struct {
	PriorCycles         int
	Statuses            []Status
	LastClosedPrincipal *decimal.Decimal
}

func (h History) Has(s Status) bool {
	for _, st := range h.Statuses {
		if st == s {
			return true
		}
	}
	return false
}
