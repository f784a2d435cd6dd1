package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yoapunto/yoapunto-api/events"
	"github.com/yoapunto/yoapunto-api/models"
	"github.com/yoapunto/yoapunto-api/repositories"
)

type ClubService interface {
	Create(ctx context.Context, input CreateClubInput) (*models.Club, error)
	GetByID(ctx context.Context, id int) (*models.Club, error)
	List(ctx context.Context, skip, limit int) ([]models.Club, error)
	Update(ctx context.Context, id int, input UpdateClubInput) (*models.Club, error)
	Deactivate(ctx context.Context, id int) (*models.Club, error)
	SetThumbnailURL(ctx context.Context, id int, url string) (*models.Club, error)
}

type CreateClubInput struct {
	Nickname     string  `json:"nickname"`
	Creator      string  `json:"creator"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

// UpdateClubInput carries true partial-update semantics: nil fields are
// left untouched.
type UpdateClubInput struct {
	Nickname     *string `json:"nickname"`
	Creator      *string `json:"creator"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

type clubService struct {
	clubRepo repositories.ClubRepository
	hub      *events.Hub
}

func NewClubService(clubRepo repositories.ClubRepository, hub *events.Hub) ClubService {
	return &clubService{
		clubRepo: clubRepo,
		hub:      hub,
	}
}

func (s *clubService) Create(ctx context.Context, input CreateClubInput) (*models.Club, error) {
	nickname := strings.TrimSpace(input.Nickname)
	creator := strings.TrimSpace(input.Creator)

	fields := fieldErrors{}
	fields.check(lengthBetween(nickname, 1, 50), "nickname", "must be 1-50 characters")
	fields.check(lengthBetween(creator, 1, 50), "creator", "must be 1-50 characters")
	if err := fields.toError(); err != nil {
		return nil, err
	}

	club := &models.Club{
		Nickname:     nickname,
		Creator:      creator,
		ThumbnailURL: input.ThumbnailURL,
	}

	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	s.hub.Publish(events.TypeClubCreated, club)
	return club, nil
}

func (s *clubService) GetByID(ctx context.Context, id int) (*models.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club by id %d: %w", id, err)
	}
	return club, nil
}

func (s *clubService) List(ctx context.Context, skip, limit int) ([]models.Club, error) {
	clubs, err := s.clubRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return clubs, nil
}

func (s *clubService) Update(ctx context.Context, id int, input UpdateClubInput) (*models.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to load club %d for update: %w", id, err)
	}

	fields := fieldErrors{}
	if input.Nickname != nil {
		nickname := strings.TrimSpace(*input.Nickname)
		fields.check(lengthBetween(nickname, 1, 50), "nickname", "must be 1-50 characters")
		club.Nickname = nickname
	}
	if input.Creator != nil {
		creator := strings.TrimSpace(*input.Creator)
		fields.check(lengthBetween(creator, 1, 50), "creator", "must be 1-50 characters")
		club.Creator = creator
	}
	if input.ThumbnailURL != nil {
		club.ThumbnailURL = input.ThumbnailURL
	}
	if err := fields.toError(); err != nil {
		return nil, err
	}

	now := time.Now()
	club.UpdatedAt = &now

	if err := s.clubRepo.Update(ctx, club); err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to update club %d: %w", id, err)
	}

	s.hub.Publish(events.TypeClubUpdated, club)
	return club, nil
}

func (s *clubService) Deactivate(ctx context.Context, id int) (*models.Club, error) {
	club, err := s.clubRepo.Deactivate(ctx, id, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			// Already inactive or missing; both read as not found.
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to deactivate club %d: %w", id, err)
	}

	s.hub.Publish(events.TypeClubDeactivated, club)
	return club, nil
}

func (s *clubService) SetThumbnailURL(ctx context.Context, id int, url string) (*models.Club, error) {
	return s.Update(ctx, id, UpdateClubInput{ThumbnailURL: &url})
}
