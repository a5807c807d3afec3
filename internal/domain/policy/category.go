package policy

type Verdict string

const (
	Green   Verdict = "GREEN"
	Yellow  Verdict = "YELLOW"
	Orange  Verdict = "ORANGE"
	Red     Verdict = "RED"
	Invalid Verdict = "INVALID"
)

// Category is the code of a hard-policy rule as stored in checklist_categories.code.
type Category string

const (
	NewClient                Category = "NEW_CLIENT"
	RecurringCustomer        Category = "RECURRING_CUSTOMER"
	IncreasePercentage       Category = "INCREASE_PERCENTAGE"
	ClientAge                Category = "CLIENT_AGE"
	MembersAccordingToPolicy Category = "NUMBER_OF_MEMBERS_ACCORDING_TO_POLICY"
	MinimumAndMaximumAmount  Category = "MINIMUM_AND_MAXIMUM_AMOUNT"
	RequestedAmount          Category = "REQUESTED_AMOUNT"
	Gender                   Category = "GENDER"
	MandatoryPhotograph      Category = "MANDATORY_PHOTOGRAPH"
	DisparityOfValues        Category = "DISPARITY_OF_VALUES"
	HousingType              Category = "HOUSING_TYPE"
	Nationality              Category = "NATIONALITY"
	CreditHistoryBureau      Category = "CREDIT_HISTORY_BUREAU"
	CreditHistoryInternal    Category = "CREDIT_HISTORY_INTERNAL"
	PaymentCapacity          Category = "PAYMENT_CAPACITY"
	EconomicActivity         Category = "ECONOMIC_ACTIVITY"
	BusinessExperience       Category = "BUSINESS_EXPERIENCE"
	GuaranteeType            Category = "GUARANTEE_TYPE"
	LoanTerm                 Category = "LOAN_TERM"
	PaymentFrequency         Category = "PAYMENT_FREQUENCY"
	InterestRateType         Category = "INTEREST_RATE_TYPE"
	WorkWithPuente           Category = "WORK_WITH_PUENTE"
	GroupPresident           Category = "GROUP_PRESIDENT"
	AdditionalCredits        Category = "ADDITIONAL_CREDITS"
	InternalBlacklist        Category = "INTERNAL_BLACKLIST"
)

// pending lists the categories whose policy has not been defined yet; they always pass.
var pending = []Category{
	MandatoryPhotograph,
	DisparityOfValues,
	HousingType,
	Nationality,
	CreditHistoryBureau,
	CreditHistoryInternal,
	PaymentCapacity,
	EconomicActivity,
	BusinessExperience,
	GuaranteeType,
	LoanTerm,
	PaymentFrequency,
	InterestRateType,
	WorkWithPuente,
	GroupPresident,
	AdditionalCredits,
	InternalBlacklist,
}
