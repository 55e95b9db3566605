package entity

type ProductType string

const (
	ProductTypeFixedDeposit ProductType = "Fixed Deposit"
	ProductTypeMutualFund   ProductType = "Mutual Fund"
	ProductTypeInsurance    ProductType = "Insurance"
	ProductTypeCreditCard   ProductType = "Credit Card"
)

type FinancialProduct struct {
	Id           uint
	Name         string
	Type         ProductType
	InterestRate string
	MinAmount    float64
	RiskLevel    string
	TenureMonths int
	Eligibility  string
}
