package service

import (
	"context"
	"time"

	"financegpt-be/internal/dto"
	"financegpt-be/internal/repository/specification"
	"financegpt-be/internal/repository/unitofwork"
	"financegpt-be/pkg/agents"
)

const offerDateLayout = "2006-01-02"

type IOfferService interface {
	GetActiveOffers(ctx context.Context) ([]*dto.OfferResponse, error)

	// ListActive satisfies the offers agent contract. It reads the
	// record store directly rather than looping back through the HTTP
	// surface.
	ListActive(ctx context.Context) ([]agents.OfferRecord, error)
}

type offerService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewOfferService(uowFactory unitofwork.RepositoryFactory) IOfferService {
	return &offerService{uowFactory: uowFactory}
}

func (s *offerService) GetActiveOffers(ctx context.Context) ([]*dto.OfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	offers, err := uow.OfferRepository().FindAll(ctx,
		specification.ValidAt{At: time.Now()},
		specification.OrderBy{Field: "valid_till"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.OfferResponse, len(offers))
	for i, offer := range offers {
		responses[i] = &dto.OfferResponse{
			ProductName:       offer.ProductName,
			PromoInterestRate: offer.PromoInterestRate,
			SignupBonus:       offer.SignupBonus,
			ValidTill:         offer.ValidTill.Format(offerDateLayout),
		}
	}
	return responses, nil
}

func (s *offerService) ListActive(ctx context.Context) ([]agents.OfferRecord, error) {
	offers, err := s.GetActiveOffers(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]agents.OfferRecord, len(offers))
	for i, offer := range offers {
		records[i] = agents.OfferRecord{
			ProductName:       offer.ProductName,
			PromoInterestRate: offer.PromoInterestRate,
			SignupBonus:       offer.SignupBonus,
			ValidTill:         offer.ValidTill,
		}
	}
	return records, nil
}
