package model

// PersonalData holds demographic and life-stage information for a user.
type PersonalData struct {
	Age                   int    `json:"age"`
	Gender                string `json:"gender"`
	City                  string `json:"city"`
	RiskProfile           string `json:"risk_profile"`
	ExpectedRetirementAge int    `json:"expected_retirement_age"`
	MaritalStatus         string `json:"marital_status"`
	Dependents            int    `json:"no_of_dependents"`
}

// IncomeData holds monthly income by source, in INR.
type IncomeData struct {
	Salaried  float64 `json:"salaried_income"`
	Business  float64 `json:"business_income"`
	Freelance float64 `json:"freelance_income"`
	Rental    float64 `json:"rental_income"`
	Other     float64 `json:"other_sources"`
}

// ExpenseData holds monthly outflows by category, in INR.
// Insurance premiums count as expenses.
type ExpenseData struct {
	Housing         float64 `json:"housing_cost"`
	Utilities       float64 `json:"utilities_and_bills"`
	Groceries       float64 `json:"groceries_and_essentials"`
	TermPremium     float64 `json:"term_insurance_premium"`
	MedicalPremium  float64 `json:"medical_insurance_premium"`
	Discretionary   float64 `json:"discretionary_expense"`
}

// AssetData holds current holdings and monthly SIP contributions, in INR.
type AssetData struct {
	EquitySIP             float64 `json:"equity_sip"`
	DebtSIP               float64 `json:"debt_sip"`
	RetirementSIP         float64 `json:"retirement_sip"`
	SavingsBalance        float64 `json:"total_savings_balance"`
	EmergencyFund         float64 `json:"total_emergency_fund"`
	EquityInvestments     float64 `json:"total_equity_investments"`
	DebtInvestments       float64 `json:"total_debt_investments"`
	RetirementInvestments float64 `json:"total_retirement_investments"`
	RealEstateInvestments float64 `json:"total_real_estate_investments"`
}

// LiabilityData holds monthly EMIs and outstanding balances per loan type, in INR.
type LiabilityData struct {
	CreditCardEMI     float64 `json:"credit_card_emi"`
	PersonalLoanEMI   float64 `json:"personal_loan_emi"`
	CarLoanEMI        float64 `json:"car_loan_emi"`
	StudentLoanEMI    float64 `json:"student_loan_emi"`
	HomeLoanEMI       float64 `json:"home_loan_emi"`
	CreditCardBalance float64 `json:"outstanding_credit_card_balance"`
	PersonalLoanBal   float64 `json:"outstanding_personal_loan_balance"`
	CarLoanBalance    float64 `json:"outstanding_car_loan_balance"`
	StudentLoanBal    float64 `json:"outstanding_student_loan_balance"`
	HomeLoanBalance   float64 `json:"outstanding_home_loan_balance"`
}

// DebtFree reports whether all outstanding loan balances are zero.
func (l LiabilityData) DebtFree() bool {
	return l.CreditCardBalance == 0 &&
		l.PersonalLoanBal == 0 &&
		l.CarLoanBalance == 0 &&
		l.StudentLoanBal == 0 &&
		l.HomeLoanBalance == 0
}

// InsuranceData holds total cover amounts across policies, in INR.
type InsuranceData struct {
	MedicalCover float64 `json:"total_medical_cover"`
	TermCover    float64 `json:"total_term_cover"`
}

// UserProfile is the full financial profile supplied by the caller.
// It is treated as immutable for the duration of an analysis.
type UserProfile struct {
	Personal  PersonalData  `json:"personal_data"`
	Income    IncomeData    `json:"income_data"`
	Expense   ExpenseData   `json:"expense_data"`
	Asset     AssetData     `json:"asset_data"`
	Liability LiabilityData `json:"liability_data"`
	Insurance InsuranceData `json:"insurance_data"`
}

// FamilySize counts the user plus their dependents.
func (p PersonalData) FamilySize() int {
	return p.Dependents + 1
}

// YearsToRetirement returns the whole years between current age and the
// expected retirement age. It may be zero or negative for malformed
// profiles; the retirement projection validates the range.
func (p PersonalData) YearsToRetirement() int {
	return p.ExpectedRetirementAge - p.Age
}
