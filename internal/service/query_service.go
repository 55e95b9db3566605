package service

import (
	"context"
	"fmt"
	"time"

	"financegpt-be/internal/dto"
	"financegpt-be/internal/entity"
	"financegpt-be/internal/pkg/logger"
	"financegpt-be/internal/repository/unitofwork"
	"financegpt-be/pkg/agents"
	"financegpt-be/pkg/events"

	"github.com/google/uuid"
)

// Sink is the caller-facing side of one query connection. The
// websocket controller implements it; tests use an in-memory double.
type Sink interface {
	SendChunk(text string) error
	SendRecommendations(recommendations []string) error
	SendError(message string) error
}

type IQueryService interface {
	// HandleQuery runs one request lifecycle end to end and sends all
	// output through the sink. It never returns an error: every
	// failure is converted to exactly one error message on the sink.
	HandleQuery(ctx context.Context, req *dto.StreamRequest, sink Sink)
}

type sessionState int

const (
	stateAuthenticating sessionState = iota
	stateClassifying
	stateDispatching
	stateStreaming
	stateRecommending
	stateLogging
	stateErrored
	stateClosed
)

type queryService struct {
	authService IAuthService
	classifier  *agents.Classifier
	dispatcher  *agents.Dispatcher
	streamer    *agents.Streamer
	recommender *agents.Recommender
	uowFactory  unitofwork.RepositoryFactory
	publisher   IPublisherService
	logger      logger.ILogger
}

func NewQueryService(
	authService IAuthService,
	classifier *agents.Classifier,
	dispatcher *agents.Dispatcher,
	streamer *agents.Streamer,
	recommender *agents.Recommender,
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
) IQueryService {
	return &queryService{
		authService: authService,
		classifier:  classifier,
		dispatcher:  dispatcher,
		streamer:    streamer,
		recommender: recommender,
		uowFactory:  uowFactory,
		publisher:   publisher,
		logger:      log,
	}
}

// session holds the per-request values that flow between states. It is
// created at request start and discarded at request end.
type session struct {
	traceId    string
	query      string
	user       *entity.User
	profile    *entity.UserProfile
	categories agents.CategorySet
	merged     agents.MergedContext
	answer     string
	startedAt  time.Time
	errMessage string
	// clientGone suppresses the final error message when the sink is
	// already unwritable.
	clientGone bool
}

func (s *queryService) HandleQuery(ctx context.Context, req *dto.StreamRequest, sink Sink) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sess := &session{
		traceId:   uuid.NewString(),
		startedAt: time.Now(),
	}

	state := stateAuthenticating
	if req == nil || req.Query == "" || req.Token == "" {
		sess.errMessage = "request must include both query and token"
		state = stateErrored
	} else {
		sess.query = req.Query
	}

	for state != stateClosed {
		switch state {
		case stateAuthenticating:
			state = s.authenticate(ctx, req.Token, sess)
		case stateClassifying:
			state = s.classify(ctx, sess)
		case stateDispatching:
			state = s.dispatch(ctx, sess)
		case stateStreaming:
			state = s.stream(ctx, cancel, sess, sink)
		case stateRecommending:
			state = s.recommend(ctx, sess, sink)
		case stateLogging:
			state = s.persist(ctx, sess)
		case stateErrored:
			if !sess.clientGone {
				if err := sink.SendError(sess.errMessage); err != nil {
					s.logger.Warn("query", "failed to deliver error message", map[string]interface{}{
						"trace_id": sess.traceId,
						"error":    err.Error(),
					})
				}
			}
			state = stateClosed
		}
	}
}

func (s *queryService) authenticate(ctx context.Context, token string, sess *session) sessionState {
	resolved, err := s.authService.ResolveToken(ctx, token)
	if err != nil {
		sess.errMessage = "authentication failed"
		s.logger.Warn("query", "token resolution failed", map[string]interface{}{
			"trace_id": sess.traceId,
			"error":    err.Error(),
		})
		return stateErrored
	}
	sess.user = resolved.User
	sess.profile = resolved.Profile
	return stateClassifying
}

func (s *queryService) classify(ctx context.Context, sess *session) sessionState {
	categories, err := s.classifier.Classify(ctx, sess.query)
	if err != nil {
		// Routing cannot proceed safely with unknown categories.
		sess.errMessage = "could not process your question, please try again"
		s.logger.Error("query", "classification failed", map[string]interface{}{
			"trace_id": sess.traceId,
			"error":    err.Error(),
		})
		return stateErrored
	}
	sess.categories = categories
	return stateDispatching
}

func (s *queryService) dispatch(ctx context.Context, sess *session) sessionState {
	sess.merged = s.dispatcher.Dispatch(ctx, sess.categories, sess.query, formatProfile(sess.profile))
	return stateStreaming
}

func (s *queryService) stream(ctx context.Context, cancel context.CancelFunc, sess *session, sink Sink) sessionState {
	chunks := s.streamer.Stream(ctx, sess.merged, "")

	var answer []byte
	var streamErr error
	for chunk := range chunks {
		if chunk.Done {
			streamErr = chunk.Err
			break
		}
		answer = append(answer, chunk.Content...)
		if sess.clientGone {
			// Keep draining so the producer can finish and stop.
			continue
		}
		if err := sink.SendChunk(chunk.Content); err != nil {
			sess.clientGone = true
			cancel()
		}
	}

	sess.answer = string(answer)

	if streamErr != nil {
		sess.errMessage = "answer generation was interrupted"
		s.logger.Error("query", "stream failed", map[string]interface{}{
			"trace_id": sess.traceId,
			"error":    streamErr.Error(),
		})
		return stateErrored
	}
	if sess.clientGone {
		// The caller is gone; the partial answer is discarded.
		return stateClosed
	}
	return stateRecommending
}

func (s *queryService) recommend(ctx context.Context, sess *session, sink Sink) sessionState {
	recommendations := s.recommender.Extract(ctx, sess.query, sess.answer)
	if err := sink.SendRecommendations(recommendations); err != nil {
		sess.clientGone = true
	}
	return stateLogging
}

func (s *queryService) persist(ctx context.Context, sess *session) sessionState {
	record := &entity.QueryLog{
		Id:             uuid.New(),
		TraceId:        sess.traceId,
		UserId:         sess.user.Id,
		UserName:       sess.profile.Name,
		Query:          sess.query,
		Answer:         sess.answer,
		Categories:     sess.categories.Values(),
		ProcessingTime: time.Since(sess.startedAt).Seconds(),
		CreatedAt:      time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.QueryLogRepository().Create(ctx, record); err != nil {
		// The caller already has their answer. Log and move on.
		s.logger.Error("query", "trace persistence failed", map[string]interface{}{
			"trace_id": sess.traceId,
			"error":    err.Error(),
		})
		return stateClosed
	}

	event := events.NewBaseEvent(QueryCompletedEventType, map[string]interface{}{
		"user_id":  sess.user.Id.String(),
		"trace_id": sess.traceId,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("query", "failed to publish query completed event", map[string]interface{}{
			"trace_id": sess.traceId,
			"error":    err.Error(),
		})
	}

	return stateClosed
}

func formatProfile(p *entity.UserProfile) string {
	if p == nil {
		return "Unknown user."
	}
	return fmt.Sprintf(
		"Name: %s\nAge: %d\nIncome: %.2f\nEmployment: %s\nRisk appetite: %s\nFinancial goals: %s\nCredit score: %d\nKYC verified: %t",
		p.Name, p.Age, p.Income, p.EmploymentType, p.RiskAppetite, p.FinancialGoals, p.CreditScore, p.KycVerified,
	)
}
