package model

import "time"

type Offer struct {
	Id                uint      `gorm:"primaryKey;autoIncrement"`
	ProductName       string    `gorm:"type:varchar(255);not null"`
	PromoInterestRate string    `gorm:"type:varchar(20)"`
	SignupBonus       string    `gorm:"type:varchar(255)"`
	ValidTill         time.Time `gorm:"type:date;not null"`
}

func (Offer) TableName() string {
	return "offers"
}
