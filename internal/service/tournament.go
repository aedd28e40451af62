package service

import (
	"context"
	"errors"
	"sort"

	"github.com/forgo/arena/bot/internal/database"
	"github.com/forgo/arena/bot/internal/model"
	"github.com/forgo/arena/bot/internal/platform"
)

// TournamentRepository defines the interface for tournament storage
type TournamentRepository interface {
	Create(ctx context.Context, tournament *model.Tournament) error
	ListByGuild(ctx context.Context, guildID string) ([]*model.Tournament, error)
	ListActiveByGuild(ctx context.Context, guildID string) ([]*model.Tournament, error)
	SetActive(ctx context.Context, id string, active bool) error
}

// GuildSettingsRepository defines the interface for guild settings storage
type GuildSettingsRepository interface {
	GetOrCreate(ctx context.Context, guildID string) (*model.GuildSettings, error)
	SetNotificationChannel(ctx context.Context, guildID, channelID string) error
}

// TournamentService handles tournament business logic
type TournamentService struct {
	repo         TournamentRepository
	settingsRepo GuildSettingsRepository
}

// TournamentServiceConfig holds configuration for the tournament service
type TournamentServiceConfig struct {
	Repo         TournamentRepository
	SettingsRepo GuildSettingsRepository
}

// NewTournamentService creates a new tournament service
func NewTournamentService(cfg TournamentServiceConfig) *TournamentService {
	return &TournamentService{
		repo:         cfg.Repo,
		settingsRepo: cfg.SettingsRepo,
	}
}

// Create opens a new tournament. It does not deactivate existing active
// tournaments; overlapping active records are tolerated and resolved at
// read time by CurrentTournament.
func (s *TournamentService) Create(ctx context.Context, tournament *model.Tournament) error {
	if tournament.Name == "" {
		return ErrTournamentNameRequired
	}
	if len(tournament.Name) > model.MaxTournamentNameLength {
		return ErrTournamentNameTooLong
	}

	if err := s.repo.Create(ctx, tournament); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return ErrTournamentExists
		}
		return err
	}
	return nil
}

// List returns all tournaments for a guild
func (s *TournamentService) List(ctx context.Context, guildID string) ([]*model.Tournament, error) {
	return s.repo.ListByGuild(ctx, guildID)
}

// Current resolves the guild's currently active tournament. A nil result
// with nil error means no tournament is open, which is a valid state.
//
// The store gives no row-order guarantee, so the records are sorted by the
// creation time embedded in their IDs before the reduce; CurrentTournament
// depends on that order.
func (s *TournamentService) Current(ctx context.Context, guildID string) (*model.Tournament, error) {
	active, err := s.repo.ListActiveByGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(active, func(i, j int) bool {
		return platform.SnowflakeTime(active[i].ID).Before(platform.SnowflakeTime(active[j].ID))
	})

	return CurrentTournament(active), nil
}

// Settings returns the guild's settings record, creating it on first use.
func (s *TournamentService) Settings(ctx context.Context, guildID string) (*model.GuildSettings, error) {
	return s.settingsRepo.GetOrCreate(ctx, guildID)
}

// Close deactivates the guild's current tournament and returns it. A nil
// result with nil error means there was nothing to close.
func (s *TournamentService) Close(ctx context.Context, guildID string) (*model.Tournament, error) {
	current, err := s.Current(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	if err := s.repo.SetActive(ctx, current.ID, false); err != nil {
		return nil, err
	}

	current.Active = false
	return current, nil
}

// SetAnnounceChannel points tournament announcements at a channel. The
// settings record is created first so the update always has a target.
func (s *TournamentService) SetAnnounceChannel(ctx context.Context, guildID, channelID string) error {
	if _, err := s.settingsRepo.GetOrCreate(ctx, guildID); err != nil {
		return err
	}
	return s.settingsRepo.SetNotificationChannel(ctx, guildID, channelID)
}

// GuildView resolves the guild's settings together with its current
// tournament. The settings record is created on first use.
func (s *TournamentService) GuildView(ctx context.Context, guildID string) (*model.GuildView, error) {
	settings, err := s.settingsRepo.GetOrCreate(ctx, guildID)
	if err != nil {
		return nil, err
	}

	current, err := s.Current(ctx, guildID)
	if err != nil {
		return nil, err
	}

	return &model.GuildView{Settings: settings, Current: current}, nil
}

// CurrentTournament selects the single current tournament from a guild's
// records. Records not flagged active are ignored; an empty active set yields
// nil. When several records are active at once (an inconsistency the data
// model does not prevent), they are reduced pairwise on the creation time
// embedded in their IDs.
//
// The reduce expects its input in ascending creation order; Current sorts
// before calling. With that order, two named records resolve to the
// later-created one.
//
// The pairwise rule is deliberately one-sided: the incumbent survives a
// comparison only when it has no name AND a newer timestamp; in every other
// case the challenger takes its place. Collapsing this to plain latest-wins
// would change which record survives when an unnamed newer record meets a
// named older one; the asymmetry test pins the current behavior so any such
// change is deliberate.
func CurrentTournament(tournaments []*model.Tournament) *model.Tournament {
	var active []*model.Tournament
	for _, t := range tournaments {
		if t != nil && t.Active {
			active = append(active, t)
		}
	}

	if len(active) == 0 {
		return nil
	}

	current := active[0]
	for _, candidate := range active[1:] {
		if current.Name == "" && platform.SnowflakeTime(current.ID).After(platform.SnowflakeTime(candidate.ID)) {
			continue
		}
		current = candidate
	}
	return current
}
