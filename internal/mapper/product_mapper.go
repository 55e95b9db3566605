package mapper

import (
	"financegpt-be/internal/entity"
	"financegpt-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.FinancialProduct) *entity.FinancialProduct {
	if p == nil {
		return nil
	}

	return &entity.FinancialProduct{
		Id:           p.Id,
		Name:         p.Name,
		Type:         entity.ProductType(p.Type),
		InterestRate: p.InterestRate,
		MinAmount:    p.MinAmount,
		RiskLevel:    p.RiskLevel,
		TenureMonths: p.TenureMonths,
		Eligibility:  p.Eligibility,
	}
}

func (m *ProductMapper) ToModel(p *entity.FinancialProduct) *model.FinancialProduct {
	if p == nil {
		return nil
	}

	return &model.FinancialProduct{
		Id:           p.Id,
		Name:         p.Name,
		Type:         string(p.Type),
		InterestRate: p.InterestRate,
		MinAmount:    p.MinAmount,
		RiskLevel:    p.RiskLevel,
		TenureMonths: p.TenureMonths,
		Eligibility:  p.Eligibility,
	}
}
