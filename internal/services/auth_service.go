package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"petbnb_backend/internal/auth"
	"petbnb_backend/internal/email"
	"petbnb_backend/internal/geo"
	"petbnb_backend/internal/logger"
	"petbnb_backend/internal/models"
	"petbnb_backend/internal/repositories"
	"petbnb_backend/internal/services/dto"
	"petbnb_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const verificationTokenTTL = 24 * time.Hour

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, userID string) error
	VerificationStatus(ctx context.Context, userID string) (*dto.VerificationStatusResponse, error)
	OAuthEmergent(ctx context.Context, sessionID string) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	caregiverRepo    repositories.CaregiverRepository
	verificationRepo repositories.VerificationRepository
	emailProvider    email.Provider
	tokens           *auth.TokenManager
	geocoder         geo.Geocoder
	frontendBaseURL  string
	oauthSessionURL  string
	httpClient       *http.Client
}

func NewAuthService(
	userRepo repositories.UserRepository,
	caregiverRepo repositories.CaregiverRepository,
	verificationRepo repositories.VerificationRepository,
	emailProvider email.Provider,
	tokens *auth.TokenManager,
	geocoder geo.Geocoder,
	frontendBaseURL string,
	oauthSessionURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		caregiverRepo:    caregiverRepo,
		verificationRepo: verificationRepo,
		emailProvider:    emailProvider,
		tokens:           tokens,
		geocoder:         geocoder,
		frontendBaseURL:  frontendBaseURL,
		oauthSessionURL:  oauthSessionURL,
		httpClient:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidateRole(string(req.Role)); err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:         req.Email,
		PasswordHash:  hashedPassword,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Role:          req.Role,
		Address:       req.Address,
		IsActive:      true,
		EmailVerified: false,
	}

	// Caregivers start with an empty profile awaiting completion. The
	// user and profile rows commit together or not at all.
	if user.Role == models.UserRoleCaregiver {
		profile := &models.CaregiverProfile{
			IDVerificationStatus: models.IDVerificationNotSubmitted,
			IsAvailable:          true,
		}
		if err := s.userRepo.CreateWithCaregiverProfile(user, profile); err != nil {
			if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
				return nil, apperrors.ErrEmailAlreadyExists
			}
			return nil, apperrors.InternalError(err)
		}
		user.CaregiverProfile = profile
	} else if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.issueVerificationToken(ctx, user); err != nil {
		// Registration stands, the user can ask for a resend.
		logger.CtxWithError(ctx, "failed to issue verification token", err, "user_id", user.ID)
	}

	accessToken, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}

	if req.Latitude != nil && req.Longitude != nil {
		user.Latitude = req.Latitude
		user.Longitude = req.Longitude
	}

	if req.Address != nil {
		user.Address = *req.Address

		// Resolve coordinates from the new address unless the caller
		// supplied them explicitly.
		if (req.Latitude == nil || req.Longitude == nil) && s.geocoder != nil && *req.Address != "" {
			lat, lng, err := s.geocoder.Geocode(ctx, *req.Address)
			if err != nil {
				logger.CtxWarn(ctx, "failed to geocode address", "error", err, "user_id", userID)
			} else {
				user.Latitude = &lat
				user.Longitude = &lng
			}
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if user.Role == models.UserRoleCaregiver && user.CaregiverProfile != nil {
		profile := user.CaregiverProfile
		changed := false
		if req.Bio != nil {
			profile.Bio = *req.Bio
			changed = true
		}
		if req.ExperienceYears != nil {
			profile.ExperienceYears = *req.ExperienceYears
			changed = true
		}
		if req.HourlyRate != nil {
			profile.HourlyRate = *req.HourlyRate
			changed = true
		}
		if req.IsAvailable != nil {
			profile.IsAvailable = *req.IsAvailable
			changed = true
		}
		if changed {
			if err := s.caregiverRepo.UpdateProfile(profile); err != nil {
				return nil, apperrors.InternalError(err)
			}
		}
	}

	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	t, err := s.verificationRepo.FindToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if t.IsUsed {
		return apperrors.ErrVerificationTokenUsed
	}
	if t.Expired(time.Now()) {
		return apperrors.ErrVerificationTokenExpired
	}

	now := time.Now()
	if err := s.verificationRepo.MarkTokenUsed(t.ID, now); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.MarkEmailVerified(t.UserID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "email verified", "user_id", t.UserID)
	return nil
}

func (s *AuthServiceImpl) ResendVerification(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if user.EmailVerified {
		return apperrors.ErrAlreadyVerified
	}

	return s.issueVerificationToken(ctx, user)
}

func (s *AuthServiceImpl) VerificationStatus(ctx context.Context, userID string) (*dto.VerificationStatusResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.VerificationStatusResponse{
		EmailVerified:        user.EmailVerified,
		IDVerificationStatus: models.IDVerificationNotSubmitted,
		CanCreateBookings:    auth.CanCreateBookings(user),
	}

	if user.Role == models.UserRoleCaregiver {
		resp.IDVerificationRequired = true
		if user.CaregiverProfile != nil {
			resp.IDVerificationStatus = user.CaregiverProfile.IDVerificationStatus
		}
		resp.CanCreateServices = auth.CanCreateServices(user, user.CaregiverProfile)
	}

	return resp, nil
}

// OAuthEmergent exchanges an opaque session id against the Emergent
// identity provider and signs the user in, creating the account on
// first contact. OAuth users still verify their email separately.
func (s *AuthServiceImpl) OAuthEmergent(ctx context.Context, sessionID string) (*dto.AuthResponse, error) {
	if sessionID == "" {
		return nil, apperrors.NewBadRequestError("X-Session-ID header is required")
	}

	sessionData, err := s.fetchOAuthSession(ctx, sessionID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken.WithError(err)
	}

	user, err := s.userRepo.FindByEmail(sessionData.Email)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}

		first, last := splitName(sessionData.Name)
		user = &models.User{
			Email:           sessionData.Email,
			PasswordHash:    "",
			FirstName:       first,
			LastName:        last,
			Role:            models.UserRolePetOwner,
			ProfileImageURL: sessionData.Picture,
			IsActive:        true,
			EmailVerified:   false,
			OAuthProvider:   "emergent",
			OAuthID:         sessionData.ID,
		}

		if err := s.userRepo.Create(user); err != nil {
			return nil, apperrors.InternalError(err)
		}

		if err := s.issueVerificationToken(ctx, user); err != nil {
			logger.CtxWithError(ctx, "failed to issue verification token", err, "user_id", user.ID)
		}
	}

	accessToken, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        dto.NewUserResponse(user),
	}, nil
}

// --- Helpers ---

func (s *AuthServiceImpl) fetchOAuthSession(ctx context.Context, sessionID string) (*dto.OAuthSessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.oauthSessionURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oauth session exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oauth session exchange returned status %d", resp.StatusCode)
	}

	var data dto.OAuthSessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode oauth session data: %w", err)
	}

	if data.Email == "" {
		return nil, fmt.Errorf("oauth session data has no email")
	}

	return &data, nil
}

func (s *AuthServiceImpl) issueVerificationToken(ctx context.Context, user *models.User) error {
	token := &models.VerificationToken{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     uuid.NewString(),
		Type:      "email",
		ExpiresAt: time.Now().Add(verificationTokenTTL),
	}

	if err := s.verificationRepo.CreateToken(token); err != nil {
		return err
	}

	s.sendVerificationEmail(ctx, user, token.Token)
	return nil
}

func (s *AuthServiceImpl) sendVerificationEmail(ctx context.Context, user *models.User, token string) {
	if s.emailProvider == nil {
		return
	}

	verificationURL := fmt.Sprintf("%s/verify-email?token=%s", s.frontendBaseURL, token)

	go func() {
		data := email.TemplateData{
			"FirstName":       user.FirstName,
			"VerificationURL": verificationURL,
		}
		if err := s.emailProvider.SendTemplate([]string{user.Email}, "Verify your PetBnB email", "verification", data); err != nil {
			logger.Error("failed to send verification email", "error", err, "user_id", user.ID)
		}
	}()
}

func splitName(full string) (string, string) {
	first, last := full, ""
	for i := len(full) - 1; i >= 0; i-- {
		if full[i] == ' ' {
			first, last = full[:i], full[i+1:]
			break
		}
	}
	return first, last
}
