package service

import (
	"context"
	"errors"

	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/fsdal"
	"github.com/daphne-i/pantrypal/logger"
	"github.com/daphne-i/pantrypal/profile/dal"
	dalIface "github.com/daphne-i/pantrypal/profile/dal/iface"
	"github.com/daphne-i/pantrypal/profile/domain"
)

// DefaultTheme is used until the user saves a preference.
const DefaultTheme = "light"

var ErrInvalidTheme = errors.New("unknown theme")

var knownThemes = map[string]bool{
	"light": true,
	"dark":  true,
}

//go:generate mockery --name ProfileService --output=./mocks
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	SetTheme(ctx context.Context, userID, theme string) error
	SetBudget(ctx context.Context, userID string, budget *float64) error
}

type profileService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	dal            dalIface.Profiles
}

func NewProfileService(log logger.Provider, conn *connection.Connection) *profileService {
	return &profileService{
		loggerProvider: log,
		conn:           conn,
		dal:            dal.NewProfilesFirestoreWithClient(conn.Firestore),
	}
}

// GetProfile returns the stored profile, or defaults when the user has never
// saved one. Absence is expected, not an error.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.dal.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, fsdal.ErrNotFound) {
			return &domain.UserProfile{
				ID:    userID,
				Theme: DefaultTheme,
			}, nil
		}

		return nil, err
	}

	if profile.Theme == "" {
		profile.Theme = DefaultTheme
	}

	return profile, nil
}

func (s *profileService) SetTheme(ctx context.Context, userID, theme string) error {
	if !knownThemes[theme] {
		return ErrInvalidTheme
	}

	return s.dal.Save(ctx, userID, map[string]interface{}{
		"theme": theme,
	}, true)
}

// SetBudget saves the monthly budget. A nil budget is written as an explicit
// null so that clearing sticks instead of falling back to a stale value.
func (s *profileService) SetBudget(ctx context.Context, userID string, budget *float64) error {
	return s.dal.Save(ctx, userID, map[string]interface{}{
		"monthlyBudget": budget,
	}, true)
}
