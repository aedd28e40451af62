package service

import (
	"context"

	"github.com/forgo/arena/bot/internal/model"
)

// StandingRepository defines the interface for standing storage
type StandingRepository interface {
	GetOrCreate(ctx context.Context, guildID, memberID, tournamentID string) (*model.Standing, error)
	AddPoints(ctx context.Context, standingID string, delta int) (*model.Standing, error)
}

// StandingService handles standings business logic
type StandingService struct {
	repo StandingRepository
}

// NewStandingService creates a new standing service
func NewStandingService(repo StandingRepository) *StandingService {
	return &StandingService{repo: repo}
}

// Career returns a member's career standing for a guild, creating a zeroed
// record on first lookup.
func (s *StandingService) Career(ctx context.Context, guildID, memberID string) (*model.Standing, error) {
	return s.repo.GetOrCreate(ctx, guildID, memberID, "")
}

// Tournament returns a member's standing within one tournament, creating a
// zeroed record on first lookup.
func (s *StandingService) Tournament(ctx context.Context, guildID, memberID, tournamentID string) (*model.Standing, error) {
	return s.repo.GetOrCreate(ctx, guildID, memberID, tournamentID)
}

// Award adds points to a member's standing in both the career record and,
// when a tournament is given, the tournament record. Returns the updated
// tournament standing when present, otherwise the career standing.
func (s *StandingService) Award(ctx context.Context, guildID, memberID, tournamentID string, points int) (*model.Standing, error) {
	if points < model.MinPointAward || points > model.MaxPointAward {
		return nil, ErrInvalidPoints
	}

	career, err := s.repo.GetOrCreate(ctx, guildID, memberID, "")
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.AddPoints(ctx, career.ID, points)
	if err != nil {
		return nil, err
	}

	if tournamentID == "" {
		return updated, nil
	}

	scoped, err := s.repo.GetOrCreate(ctx, guildID, memberID, tournamentID)
	if err != nil {
		return nil, err
	}
	return s.repo.AddPoints(ctx, scoped.ID, points)
}
