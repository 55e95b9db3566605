package mapper

import (
	"financegpt-be/internal/entity"
	"financegpt-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		QueryCount:   u.QueryCount,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		QueryCount:   u.QueryCount,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ProfileToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}

	return &entity.UserProfile{
		UserId:         p.UserId,
		Name:           p.Name,
		Age:            p.Age,
		Income:         p.Income,
		EmploymentType: p.EmploymentType,
		RiskAppetite:   p.RiskAppetite,
		FinancialGoals: p.FinancialGoals,
		CreditScore:    p.CreditScore,
		KycVerified:    p.KycVerified,
	}
}

func (m *UserMapper) ProfileToModel(p *entity.UserProfile) *model.UserProfile {
	if p == nil {
		return nil
	}

	return &model.UserProfile{
		UserId:         p.UserId,
		Name:           p.Name,
		Age:            p.Age,
		Income:         p.Income,
		EmploymentType: p.EmploymentType,
		RiskAppetite:   p.RiskAppetite,
		FinancialGoals: p.FinancialGoals,
		CreditScore:    p.CreditScore,
		KycVerified:    p.KycVerified,
	}
}
