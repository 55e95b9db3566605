package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"financegpt-be/internal/dto"
	"financegpt-be/internal/entity"
	"financegpt-be/internal/pkg/serverutils"
	"financegpt-be/internal/repository/specification"
	"financegpt-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAuthFailed         = errors.New("authentication failed")
)

// ResolvedSession is a token resolved to an identity and profile.
type ResolvedSession struct {
	User    *entity.User
	Profile *entity.UserProfile
}

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)

	// ResolveToken validates a token and returns the identity and
	// profile behind it. Resolutions are cached briefly since the
	// websocket path resolves on every connection.
	ResolveToken(ctx context.Context, token string) (*ResolvedSession, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	jwtSecret    string
	tokenTTL     time.Duration
	sessionCache *gocache.Cache
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, tokenTTLHours, sessionTTLMins int) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		jwtSecret:    jwtSecret,
		tokenTTL:     time.Duration(tokenTTLHours) * time.Hour,
		sessionCache: gocache.New(time.Duration(sessionTTLMins)*time.Minute, 10*time.Minute),
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	profile := &entity.UserProfile{
		UserId:         user.Id,
		Name:           req.Name,
		Age:            req.Age,
		Income:         req.Income,
		EmploymentType: req.EmploymentType,
		RiskAppetite:   req.RiskAppetite,
		FinancialGoals: req.FinancialGoals,
		CreditScore:    req.CreditScore,
	}

	// User and profile land together or not at all.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().CreateProfile(ctx, profile); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	s.sessionCache.Delete(token)
	return nil
}

func (s *authService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrAuthFailed
	}
	profile, err := uow.UserRepository().FindProfileByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile not found for user %s", userId)
	}

	return &dto.ProfileResponse{
		UserId:         user.Id,
		Name:           profile.Name,
		Age:            profile.Age,
		Income:         profile.Income,
		EmploymentType: profile.EmploymentType,
		RiskAppetite:   profile.RiskAppetite,
		FinancialGoals: profile.FinancialGoals,
		CreditScore:    profile.CreditScore,
		KycVerified:    profile.KycVerified,
		QueryCount:     user.QueryCount,
	}, nil
}

func (s *authService) ResolveToken(ctx context.Context, token string) (*ResolvedSession, error) {
	if cached, found := s.sessionCache.Get(token); found {
		return cached.(*ResolvedSession), nil
	}

	userIdStr, err := serverutils.ParseToken(token)
	if err != nil {
		return nil, ErrAuthFailed
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil, ErrAuthFailed
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrAuthFailed
	}
	profile, err := uow.UserRepository().FindProfileByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrAuthFailed
	}

	session := &ResolvedSession{User: user, Profile: profile}
	s.sessionCache.SetDefault(token, session)
	return session, nil
}

func (s *authService) issueToken(user *entity.User) (*dto.AuthResponse, error) {
	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     signed,
		UserId:    user.Id,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}, nil
}
