package model

type FinancialProduct struct {
	Id           uint    `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"type:varchar(255);not null"`
	Type         string  `gorm:"type:varchar(50);not null"`
	InterestRate string  `gorm:"type:varchar(20)"`
	MinAmount    float64 `gorm:"type:numeric(12,2);not null"`
	RiskLevel    string  `gorm:"type:varchar(50);not null"`
	TenureMonths int
	Eligibility  string `gorm:"type:varchar(255)"`
}

func (FinancialProduct) TableName() string {
	return "financial_products"
}
