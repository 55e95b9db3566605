package entity

import "time"

type Offer struct {
	Id                uint
	ProductName       string
	PromoInterestRate string
	SignupBonus       string
	ValidTill         time.Time
}
