package mapper

import (
	"encoding/json"

	"financegpt-be/internal/entity"
	"financegpt-be/internal/model"

	"gorm.io/datatypes"
)

type QueryLogMapper struct{}

func NewQueryLogMapper() *QueryLogMapper {
	return &QueryLogMapper{}
}

func (m *QueryLogMapper) ToEntity(q *model.QueryLog) *entity.QueryLog {
	if q == nil {
		return nil
	}

	var categories []string
	if len(q.Categories) > 0 {
		// Malformed stored JSON degrades to an empty category list.
		_ = json.Unmarshal(q.Categories, &categories)
	}

	return &entity.QueryLog{
		Id:             q.Id,
		TraceId:        q.TraceId,
		UserId:         q.UserId,
		UserName:       q.UserName,
		Query:          q.Query,
		Answer:         q.Answer,
		Categories:     categories,
		ProcessingTime: q.ProcessingTime,
		CreatedAt:      q.CreatedAt,
	}
}

func (m *QueryLogMapper) ToModel(q *entity.QueryLog) *model.QueryLog {
	if q == nil {
		return nil
	}

	categories := q.Categories
	if categories == nil {
		categories = []string{}
	}
	raw, _ := json.Marshal(categories)

	return &model.QueryLog{
		Id:             q.Id,
		TraceId:        q.TraceId,
		UserId:         q.UserId,
		UserName:       q.UserName,
		Query:          q.Query,
		Answer:         q.Answer,
		Categories:     datatypes.JSON(raw),
		ProcessingTime: q.ProcessingTime,
		CreatedAt:      q.CreatedAt,
	}
}
