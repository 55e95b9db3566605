package dto

type OfferResponse struct {
	ProductName       string `json:"product_name"`
	PromoInterestRate string `json:"promo_interest_rate"`
	SignupBonus       string `json:"signup_bonus"`
	ValidTill         string `json:"valid_till"`
}
