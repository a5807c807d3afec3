package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fineract-prequalification/internal/domain/checklist"
	"fineract-prequalification/internal/domain/loan"
	"fineract-prequalification/internal/domain/prequalification"
	"fineract-prequalification/internal/domain/product"
)

// --- tables owned by other services, reduced to the columns read here ---

type clientSQLite struct {
	ID          int64  `gorm:"primaryKey;column:id"`
	DisplayName string `gorm:"column:display_name"`
	GenderCVID  *int64 `gorm:"column:gender_cv_id"`
}

func (clientSQLite) TableName() string { return "m_client" }

type clientContactSQLite struct {
	ID       int64  `gorm:"primaryKey;column:id"`
	ClientID int64  `gorm:"column:client_id"`
	AreaCVID *int64 `gorm:"column:area_cv_id"`
}

func (clientContactSQLite) TableName() string { return "m_client_contact_info" }

type codeSQLite struct {
	ID       int64  `gorm:"primaryKey;column:id"`
	CodeName string `gorm:"column:code_name"`
}

func (codeSQLite) TableName() string { return "m_code" }

type codeValueSQLite struct {
	ID            int64  `gorm:"primaryKey;column:id"`
	CodeID        int64  `gorm:"column:code_id"`
	CodeValue     string `gorm:"column:code_value"`
	OrderPosition int    `gorm:"column:order_position"`
}

func (codeValueSQLite) TableName() string { return "m_code_value" }

// openTestDB creates an in-memory sqlite DB with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// one connection, or every new conn sees an empty :memory: db
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&product.LoanProduct{},
		&prequalification.Group{},
		&prequalification.Member{},
		&prequalification.StatusLog{},
		&checklist.Category{},
		&checklist.Decision{},
		&checklist.Result{},
		&loan.Loan{},
		&loan.Installment{},
		&clientSQLite{},
		&clientContactSQLite{},
		&codeSQLite{},
		&codeValueSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func ptr[T any](v T) *T { return &v }

func mustCreate(t *testing.T, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed %T: %v", v, err)
	}
}

// seedGroup inserts product 2 and group 1 with two members; the first one
// is linked to client 501 (female, rural).
func seedGroup(t *testing.T, db *gorm.DB) *prequalification.Group {
	t.Helper()
	mustCreate(t, db, &product.LoanProduct{ID: 2, Name: "Grupal", ShortName: "GRP"})
	mustCreate(t, db, &codeSQLite{ID: 1, CodeName: "Gender"})
	mustCreate(t, db, &codeSQLite{ID: 2, CodeName: "Area"})
	mustCreate(t, db, &[]codeValueSQLite{
		{ID: 11, CodeID: 1, CodeValue: "Mujer", OrderPosition: 1},
		{ID: 12, CodeID: 1, CodeValue: "Hombre", OrderPosition: 2},
		{ID: 21, CodeID: 2, CodeValue: "Rural", OrderPosition: 1},
	})
	mustCreate(t, db, &clientSQLite{ID: 501, DisplayName: "Ana", GenderCVID: ptr(int64(11))})
	mustCreate(t, db, &clientContactSQLite{ID: 1, ClientID: 501, AreaCVID: ptr(int64(21))})

	g := &prequalification.Group{
		ID:                     1,
		PrequalificationNumber: "PQ-0001",
		GroupName:              "Las Flores",
		ProductID:              2,
		Status:                 prequalification.StatusConsentAdded,
		Members: []prequalification.Member{
			{
				ID: 101, ClientID: ptr(int64(501)), Name: "Ana", DPI: "1111",
				DateOfBirth:     time.Date(1990, 3, 4, 0, 0, 0, 0, time.UTC),
				RequestedAmount: decimal.NewFromInt(1000),
			},
			{
				ID: 102, Name: "Berta", DPI: "2222",
				DateOfBirth:     time.Date(1985, 7, 1, 0, 0, 0, 0, time.UTC),
				RequestedAmount: decimal.RequireFromString("1500.50"),
				WorkWithPuente:  true,
			},
		},
	}
	mustCreate(t, db, g)
	return g
}

func seedCategories(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustCreate(t, db, &[]checklist.Category{
		{ID: 1, Code: "NUMBER_OF_MEMBERS_ACCORDING_TO_POLICY", Name: "Members", TypeEnum: checklist.ValidationTypeGroup},
		{ID: 2, Code: "GENDER", Name: "Gender", TypeEnum: checklist.ValidationTypeIndividual},
		{ID: 3, Code: "CLIENT_AGE", Name: "Age", TypeEnum: checklist.ValidationTypeIndividual},
		{ID: 4, Code: "HOUSING_TYPE", Name: "Housing", TypeEnum: checklist.ValidationTypeIndividual},
	})
	// HOUSING_TYPE is not configured for product 2
	mustCreate(t, db, &[]checklist.Decision{
		{CategoryID: 1, ProductID: 2},
		{CategoryID: 2, ProductID: 2},
		{CategoryID: 3, ProductID: 2},
		{CategoryID: 4, ProductID: 9},
	})
}
