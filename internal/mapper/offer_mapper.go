package mapper

import (
	"financegpt-be/internal/entity"
	"financegpt-be/internal/model"
)

type OfferMapper struct{}

func NewOfferMapper() *OfferMapper {
	return &OfferMapper{}
}

func (m *OfferMapper) ToEntity(o *model.Offer) *entity.Offer {
	if o == nil {
		return nil
	}

	return &entity.Offer{
		Id:                o.Id,
		ProductName:       o.ProductName,
		PromoInterestRate: o.PromoInterestRate,
		SignupBonus:       o.SignupBonus,
		ValidTill:         o.ValidTill,
	}
}

func (m *OfferMapper) ToModel(o *entity.Offer) *model.Offer {
	if o == nil {
		return nil
	}

	return &model.Offer{
		Id:                o.Id,
		ProductName:       o.ProductName,
		PromoInterestRate: o.PromoInterestRate,
		SignupBonus:       o.SignupBonus,
		ValidTill:         o.ValidTill,
	}
}
