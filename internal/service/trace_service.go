package service

import (
	"context"

	"financegpt-be/internal/dto"
	"financegpt-be/internal/entity"
	"financegpt-be/internal/repository/specification"
	"financegpt-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITraceService interface {
	ListByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.TraceResponse, error)
	GetByTraceId(ctx context.Context, traceId string) (*dto.TraceResponse, error)
}

type traceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTraceService(uowFactory unitofwork.RepositoryFactory) ITraceService {
	return &traceService{uowFactory: uowFactory}
}

func (s *traceService) ListByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.TraceResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.QueryLogRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TraceResponse, len(logs))
	for i, log := range logs {
		responses[i] = toTraceResponse(log)
	}
	return responses, nil
}

func (s *traceService) GetByTraceId(ctx context.Context, traceId string) (*dto.TraceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	log, err := uow.QueryLogRepository().FindOne(ctx, specification.ByTraceID{TraceID: traceId})
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, nil
	}
	return toTraceResponse(log), nil
}

func toTraceResponse(log *entity.QueryLog) *dto.TraceResponse {
	categories := log.Categories
	if categories == nil {
		categories = []string{}
	}
	return &dto.TraceResponse{
		TraceId:        log.TraceId,
		UserId:         log.UserId,
		UserName:       log.UserName,
		Query:          log.Query,
		Answer:         log.Answer,
		Categories:     categories,
		ProcessingTime: log.ProcessingTime,
		CreatedAt:      log.CreatedAt,
	}
}
