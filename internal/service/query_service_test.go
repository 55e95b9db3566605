package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"financegpt-be/internal/dto"
	"financegpt-be/internal/entity"
	"financegpt-be/internal/repository/contract"
	"financegpt-be/internal/repository/specification"
	"financegpt-be/internal/repository/unitofwork"
	"financegpt-be/pkg/agents"
	"financegpt-be/pkg/events"
	"financegpt-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// scriptedProvider routes by prompt content so one provider can serve
// the classifier, the SQL agent, the streamer, and the recommender in
// a single end-to-end run.
type scriptedProvider struct {
	classification  string
	sql             string
	recommendations string
	streamChunks    []llm.StreamChunk
	generateErr     error
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	if p.generateErr != nil {
		return "", p.generateErr
	}
	switch {
	case strings.Contains(prompt, "routing agent"):
		return p.classification, nil
	case strings.Contains(prompt, "SQL programmer"):
		return p.sql, nil
	case strings.Contains(prompt, "follow-up"):
		return p.recommendations, nil
	}
	return "", nil
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return "", nil
}

func (p *scriptedProvider) ChatStream(ctx context.Context, history []llm.Message, options ...llm.Option) <-chan llm.StreamChunk {
	out := make(chan llm.StreamChunk, llm.StreamBufferSize)
	go func() {
		defer close(out)
		for _, chunk := range p.streamChunks {
			out <- chunk
			if chunk.Done {
				return
			}
		}
		out <- llm.StreamChunk{Done: true}
	}()
	return out
}

type fakeAuthService struct {
	session *ResolvedSession
	err     error
}

func (f *fakeAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return nil, nil
}
func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return nil, nil
}
func (f *fakeAuthService) Logout(ctx context.Context, token string) error { return nil }
func (f *fakeAuthService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	return nil, nil
}
func (f *fakeAuthService) ResolveToken(ctx context.Context, token string) (*ResolvedSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

// recordingSink captures everything the orchestrator sends.
type recordingSink struct {
	mu              sync.Mutex
	chunks          []string
	recommendations [][]string
	errorMessages   []string
}

func (s *recordingSink) SendChunk(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, text)
	return nil
}

func (s *recordingSink) SendRecommendations(recommendations []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommendations = append(s.recommendations, recommendations)
	return nil
}

func (s *recordingSink) SendError(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorMessages = append(s.errorMessages, message)
	return nil
}

// fakeUowFactory provides the query log and user repositories; the
// other accessors are unused by the services under test.
type fakeUowFactory struct {
	queryLogs *fakeQueryLogRepo
	users     *fakeUserRepo
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{queryLogs: f.queryLogs, users: f.users}
}

type fakeUow struct {
	queryLogs *fakeQueryLogRepo
	users     *fakeUserRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository         { return u.users }
func (u *fakeUow) ProductRepository() contract.ProductRepository   { return nil }
func (u *fakeUow) OfferRepository() contract.OfferRepository       { return nil }
func (u *fakeUow) QueryLogRepository() contract.QueryLogRepository { return u.queryLogs }
func (u *fakeUow) BrochureRepository() contract.BrochureRepository { return nil }

type fakeUserRepo struct {
	mu           sync.Mutex
	incremented  []uuid.UUID
	incrementErr error
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (r *fakeUserRepo) IncrementQueryCount(ctx context.Context, userId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.incrementErr != nil {
		return r.incrementErr
	}
	r.incremented = append(r.incremented, userId)
	return nil
}
func (r *fakeUserRepo) CreateProfile(ctx context.Context, profile *entity.UserProfile) error {
	return nil
}
func (r *fakeUserRepo) FindProfileByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error) {
	return nil, nil
}

type fakeQueryLogRepo struct {
	mu      sync.Mutex
	records []*entity.QueryLog
	err     error
}

func (r *fakeQueryLogRepo) Create(ctx context.Context, log *entity.QueryLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, log)
	return nil
}

func (r *fakeQueryLogRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QueryLog, error) {
	return nil, nil
}

func (r *fakeQueryLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QueryLog, error) {
	return nil, nil
}

func (r *fakeQueryLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type trackingQueryAgent struct {
	mu      sync.Mutex
	payload string
	err     error
	calls   int
}

func (a *trackingQueryAgent) Run(ctx context.Context, query string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	return a.payload, a.err
}

type trackingListingAgent struct {
	mu    sync.Mutex
	calls int
}

func (a *trackingListingAgent) Run(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	return "offers", nil
}

func testSession() *ResolvedSession {
	userId := uuid.New()
	return &ResolvedSession{
		User: &entity.User{Id: userId, Email: "asha@example.com", IsActive: true},
		Profile: &entity.UserProfile{
			UserId: userId, Name: "Asha", Age: 31, Income: 90000,
			EmploymentType: "Salaried", RiskAppetite: "Medium",
			FinancialGoals: "Retirement", CreditScore: 760, KycVerified: true,
		},
	}
}

type pipeline struct {
	service    IQueryService
	structured *trackingQueryAgent
	document   *trackingQueryAgent
	offers     *trackingListingAgent
	queryLogs  *fakeQueryLogRepo
	publisher  *fakePublisher
}

func newTestPipeline(provider *scriptedProvider, auth IAuthService) *pipeline {
	structured := &trackingQueryAgent{payload: "structured rows"}
	document := &trackingQueryAgent{payload: "brochure passages"}
	offers := &trackingListingAgent{}
	queryLogs := &fakeQueryLogRepo{}
	publisher := &fakePublisher{}

	svc := NewQueryService(
		auth,
		agents.NewClassifier(provider),
		agents.NewDispatcher(structured, document, offers),
		agents.NewStreamer(provider),
		agents.NewRecommender(provider),
		&fakeUowFactory{queryLogs: queryLogs},
		publisher,
		noopLogger{},
	)

	return &pipeline{
		service:    svc,
		structured: structured,
		document:   document,
		offers:     offers,
		queryLogs:  queryLogs,
		publisher:  publisher,
	}
}

func TestHandleQueryStructuredOnly(t *testing.T) {
	provider := &scriptedProvider{
		classification:  "STRUCTURED_DATA",
		recommendations: `["What tenure suits me?"]`,
		streamChunks: []llm.StreamChunk{
			{Content: "We offer "},
			{Content: "7.1% on 24 months."},
			{Done: true},
		},
	}
	p := newTestPipeline(provider, &fakeAuthService{session: testSession()})
	sink := &recordingSink{}

	p.service.HandleQuery(context.Background(), &dto.StreamRequest{Query: "What fixed deposit rates do you offer?", Token: "t"}, sink)

	assert.Equal(t, 1, p.structured.calls, "structured agent should run exactly once")
	assert.Equal(t, 0, p.document.calls, "document agent must not run")
	assert.Equal(t, 0, p.offers.calls, "offers agent must not run")

	assert.Equal(t, []string{"We offer ", "7.1% on 24 months."}, sink.chunks)
	assert.Len(t, sink.recommendations, 1)
	assert.Equal(t, []string{"What tenure suits me?"}, sink.recommendations[0])
	assert.Empty(t, sink.errorMessages)

	assert.Len(t, p.queryLogs.records, 1, "trace persisted exactly once")
	record := p.queryLogs.records[0]
	assert.Equal(t, "We offer 7.1% on 24 months.", record.Answer)
	assert.Equal(t, []string{"STRUCTURED_DATA"}, record.Categories)
	assert.NotEmpty(t, record.TraceId)
	assert.Len(t, p.publisher.events, 1, "completion event published")
	assert.Equal(t, QueryCompletedEventType, p.publisher.events[0].EventType())
	assert.Equal(t, record.TraceId, p.publisher.events[0].Payload()["trace_id"])
}

func TestHandleQueryAgentFailureStillStreams(t *testing.T) {
	provider := &scriptedProvider{
		classification:  "STRUCTURED_DATA,DOCUMENT_EXTRACTION",
		recommendations: `[]`,
		streamChunks: []llm.StreamChunk{
			{Content: "answer"},
			{Done: true},
		},
	}
	p := newTestPipeline(provider, &fakeAuthService{session: testSession()})
	p.structured.err = errors.New("timeout")
	sink := &recordingSink{}

	p.service.HandleQuery(context.Background(), &dto.StreamRequest{Query: "q", Token: "t"}, sink)

	assert.Equal(t, 1, p.structured.calls)
	assert.Equal(t, 1, p.document.calls)
	assert.Equal(t, []string{"answer"}, sink.chunks, "streaming proceeds despite one agent failing")
	assert.Empty(t, sink.errorMessages)
	assert.Len(t, p.queryLogs.records, 1)
}

func TestHandleQueryBadCredential(t *testing.T) {
	provider := &scriptedProvider{}
	p := newTestPipeline(provider, &fakeAuthService{err: errors.New("bad token")})
	sink := &recordingSink{}

	p.service.HandleQuery(context.Background(), &dto.StreamRequest{Query: "q", Token: "bad"}, sink)

	assert.Empty(t, sink.chunks, "no chunks before authentication succeeds")
	assert.Empty(t, sink.recommendations)
	assert.Len(t, sink.errorMessages, 1, "exactly one error message")
	assert.Empty(t, p.queryLogs.records, "no trace for a failed request")
}

func TestHandleQueryMissingFields(t *testing.T) {
	provider := &scriptedProvider{}
	auth := &fakeAuthService{session: testSession()}
	p := newTestPipeline(provider, auth)
	sink := &recordingSink{}

	p.service.HandleQuery(context.Background(), &dto.StreamRequest{Query: "", Token: "t"}, sink)

	assert.Len(t, sink.errorMessages, 1)
	assert.Empty(t, sink.chunks)
	assert.Empty(t, p.queryLogs.records)
}

func TestHandleQueryStreamFailure(t *testing.T) {
	provider := &scriptedProvider{
		classification: "DOCUMENT_EXTRACTION",
		streamChunks: []llm.StreamChunk{
			{Content: "partial "},
			{Done: true, Err: errors.New("connection reset")},
		},
	}
	p := newTestPipeline(provider, &fakeAuthService{session: testSession()})
	sink := &recordingSink{}

	p.service.HandleQuery(context.Background(), &dto.StreamRequest{Query: "q", Token: "t"}, sink)

	assert.Equal(t, []string{"partial "}, sink.chunks, "chunks sent before the failure stand")
	assert.Empty(t, sink.recommendations, "no recommendations after a failed stream")
	assert.Len(t, sink.errorMessages, 1, "exactly one error message")
	assert.Empty(t, p.queryLogs.records, "no trace for an interrupted answer")
}

func TestHandleQueryClassificationFailureIsFatal(t *testing.T) {
	provider := &scriptedProvider{generateErr: errors.New("model down")}
	p := newTestPipeline(provider, &fakeAuthService{session: testSession()})
	sink := &recordingSink{}

	p.service.HandleQuery(context.Background(), &dto.StreamRequest{Query: "q", Token: "t"}, sink)

	assert.Len(t, sink.errorMessages, 1)
	assert.Empty(t, sink.chunks)
	assert.Equal(t, 0, p.structured.calls+p.document.calls+p.offers.calls, "no agents run without routing")
}

func TestHandleQueryPersistenceFailureIsSilent(t *testing.T) {
	provider := &scriptedProvider{
		classification:  "STRUCTURED_DATA",
		recommendations: `[]`,
		streamChunks:    []llm.StreamChunk{{Content: "a"}, {Done: true}},
	}
	p := newTestPipeline(provider, &fakeAuthService{session: testSession()})
	p.queryLogs.err = errors.New("db down")
	sink := &recordingSink{}

	p.service.HandleQuery(context.Background(), &dto.StreamRequest{Query: "q", Token: "t"}, sink)

	assert.Empty(t, sink.errorMessages, "persistence failure is never surfaced to the caller")
	assert.Len(t, sink.recommendations, 1, "the caller still gets the terminal message")
}
