package service

import (
	"context"

	"dsa_roadmap_backend/internal/model"
	"dsa_roadmap_backend/internal/repository"
	"dsa_roadmap_backend/internal/util"
)

// ProfileService reads the single-tenant user profile and owns the full
// application reset.
type ProfileService struct {
	Store repository.KeyValueStore
}

func NewProfileService(store repository.KeyValueStore) *ProfileService {
	return &ProfileService{Store: store}
}

func (s *ProfileService) Get(ctx context.Context) (*model.UserProfile, error) {
	var profile model.UserProfile
	found, err := s.Store.Load(ctx, util.KeyUserProfile, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, util.ErrNoProfile
	}
	return &profile, nil
}

// Clear wipes every application entry. Only prefixed keys are touched, so
// foreign rows in a shared store survive.
func (s *ProfileService) Clear(ctx context.Context) error {
	return s.Store.Clear(ctx, util.KeyPrefix)
}

func (s *ProfileService) Theme(ctx context.Context) (string, error) {
	var theme string
	found, err := s.Store.Load(ctx, util.KeyThemePreference, &theme)
	if err != nil {
		return "", err
	}
	if !found || theme == "" {
		return "light", nil
	}
	return theme, nil
}

func (s *ProfileService) SetTheme(ctx context.Context, theme string) error {
	return s.Store.Save(ctx, util.KeyThemePreference, theme)
}
