package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/forgo/arena/bot/internal/database"
	"github.com/forgo/arena/bot/internal/model"
)

// Mock implementations

type mockTournamentRepo struct {
	createFunc     func(ctx context.Context, tournament *model.Tournament) error
	listFunc       func(ctx context.Context, guildID string) ([]*model.Tournament, error)
	listActiveFunc func(ctx context.Context, guildID string) ([]*model.Tournament, error)
	setActiveFunc  func(ctx context.Context, id string, active bool) error
}

func (m *mockTournamentRepo) Create(ctx context.Context, tournament *model.Tournament) error {
	return m.createFunc(ctx, tournament)
}

func (m *mockTournamentRepo) ListByGuild(ctx context.Context, guildID string) ([]*model.Tournament, error) {
	return m.listFunc(ctx, guildID)
}

func (m *mockTournamentRepo) ListActiveByGuild(ctx context.Context, guildID string) ([]*model.Tournament, error) {
	return m.listActiveFunc(ctx, guildID)
}

func (m *mockTournamentRepo) SetActive(ctx context.Context, id string, active bool) error {
	return m.setActiveFunc(ctx, id, active)
}

type mockSettingsRepo struct {
	getOrCreateFunc func(ctx context.Context, guildID string) (*model.GuildSettings, error)
	setChannelFunc  func(ctx context.Context, guildID, channelID string) error
}

func (m *mockSettingsRepo) GetOrCreate(ctx context.Context, guildID string) (*model.GuildSettings, error) {
	return m.getOrCreateFunc(ctx, guildID)
}

func (m *mockSettingsRepo) SetNotificationChannel(ctx context.Context, guildID, channelID string) error {
	return m.setChannelFunc(ctx, guildID, channelID)
}

// snowflakeAt builds an ID whose embedded creation time is ts.
func snowflakeAt(ts time.Time) string {
	const epochMS = 1420070400000
	return strconv.FormatUint(uint64(ts.UnixMilli()-epochMS)<<22, 10)
}

var (
	older = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newer = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

// ============================================================================
// CurrentTournament Tests
// ============================================================================

func TestCurrentTournament_Empty(t *testing.T) {
	t.Parallel()
	if got := CurrentTournament(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := CurrentTournament([]*model.Tournament{}); got != nil {
		t.Errorf("expected nil for empty slice, got %v", got)
	}
}

func TestCurrentTournament_AllInactive(t *testing.T) {
	t.Parallel()
	tournaments := []*model.Tournament{
		{ID: snowflakeAt(older), Name: "Closed Cup", Active: false},
		{ID: snowflakeAt(newer), Name: "Finished Open", Active: false},
	}
	if got := CurrentTournament(tournaments); got != nil {
		t.Errorf("expected nil when nothing is active, got %v", got)
	}
}

func TestCurrentTournament_SingleActive(t *testing.T) {
	t.Parallel()
	only := &model.Tournament{ID: snowflakeAt(older), Name: "Spring Open", Active: true}
	tournaments := []*model.Tournament{
		{ID: snowflakeAt(newer), Name: "Closed Cup", Active: false},
		only,
	}
	if got := CurrentTournament(tournaments); got != only {
		t.Errorf("expected the single active record, got %v", got)
	}
}

func TestCurrentTournament_BothNamed_LaterEntryWins(t *testing.T) {
	t.Parallel()
	first := &model.Tournament{ID: snowflakeAt(newer), Name: "Winter Cup", Active: true}
	second := &model.Tournament{ID: snowflakeAt(older), Name: "Spring Open", Active: true}

	// A named incumbent always yields, regardless of timestamps.
	if got := CurrentTournament([]*model.Tournament{first, second}); got != second {
		t.Errorf("expected the later list entry, got %v", got)
	}
}

func TestCurrentTournament_UnnamedNewerIncumbentSurvives(t *testing.T) {
	t.Parallel()
	unnamed := &model.Tournament{ID: snowflakeAt(newer), Name: "", Active: true}
	named := &model.Tournament{ID: snowflakeAt(older), Name: "Spring Open", Active: true}

	if got := CurrentTournament([]*model.Tournament{unnamed, named}); got != unnamed {
		t.Errorf("unnamed newer incumbent should survive, got %v", got)
	}
}

// The reduce rule is one-sided: the same two records select differently
// depending on which one arrives first. An unnamed newer record survives as
// the incumbent but loses as the challenger.
func TestCurrentTournament_RuleIsOrderSensitive(t *testing.T) {
	t.Parallel()
	unnamed := &model.Tournament{ID: snowflakeAt(newer), Name: "", Active: true}
	named := &model.Tournament{ID: snowflakeAt(older), Name: "Spring Open", Active: true}

	if got := CurrentTournament([]*model.Tournament{unnamed, named}); got != unnamed {
		t.Errorf("unnamed-first: expected the unnamed record, got %v", got)
	}
	if got := CurrentTournament([]*model.Tournament{named, unnamed}); got != unnamed {
		t.Errorf("named-first: expected the unnamed record, got %v", got)
	}

	// Swap the timestamps: an unnamed OLDER incumbent yields to the
	// challenger, so ordering decides the result.
	unnamedOlder := &model.Tournament{ID: snowflakeAt(older), Name: "", Active: true}
	namedNewer := &model.Tournament{ID: snowflakeAt(newer), Name: "Winter Cup", Active: true}

	if got := CurrentTournament([]*model.Tournament{unnamedOlder, namedNewer}); got != namedNewer {
		t.Errorf("unnamed-older-first: expected the named record, got %v", got)
	}
	if got := CurrentTournament([]*model.Tournament{namedNewer, unnamedOlder}); got != unnamedOlder {
		t.Errorf("named-first: expected the unnamed record to take over, got %v", got)
	}
}

func TestCurrentTournament_SkipsNilEntries(t *testing.T) {
	t.Parallel()
	only := &model.Tournament{ID: snowflakeAt(older), Name: "Spring Open", Active: true}
	if got := CurrentTournament([]*model.Tournament{nil, only, nil}); got != only {
		t.Errorf("expected the active record, got %v", got)
	}
}

// ============================================================================
// TournamentService Tests
// ============================================================================

func newTestTournamentService(repo TournamentRepository, settings GuildSettingsRepository) *TournamentService {
	return NewTournamentService(TournamentServiceConfig{Repo: repo, SettingsRepo: settings})
}

func TestTournamentCreate_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	created := false
	repo := &mockTournamentRepo{
		createFunc: func(ctx context.Context, tournament *model.Tournament) error {
			created = true
			return nil
		},
	}
	svc := newTestTournamentService(repo, nil)

	err := svc.Create(ctx, &model.Tournament{ID: snowflakeAt(newer), Name: "Spring Open", GuildID: "g", Active: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected repository create to be called")
	}
}

func TestTournamentCreate_NameRequired(t *testing.T) {
	t.Parallel()
	svc := newTestTournamentService(&mockTournamentRepo{}, nil)

	err := svc.Create(context.Background(), &model.Tournament{Name: ""})
	if !errors.Is(err, ErrTournamentNameRequired) {
		t.Errorf("expected ErrTournamentNameRequired, got %v", err)
	}
}

func TestTournamentCreate_NameTooLong(t *testing.T) {
	t.Parallel()
	svc := newTestTournamentService(&mockTournamentRepo{}, nil)

	long := make([]byte, model.MaxTournamentNameLength+1)
	for i := range long {
		long[i] = 'a'
	}
	err := svc.Create(context.Background(), &model.Tournament{Name: string(long)})
	if !errors.Is(err, ErrTournamentNameTooLong) {
		t.Errorf("expected ErrTournamentNameTooLong, got %v", err)
	}
}

func TestTournamentCreate_Duplicate(t *testing.T) {
	t.Parallel()
	repo := &mockTournamentRepo{
		createFunc: func(ctx context.Context, tournament *model.Tournament) error {
			return database.ErrDuplicate
		},
	}
	svc := newTestTournamentService(repo, nil)

	err := svc.Create(context.Background(), &model.Tournament{Name: "Spring Open"})
	if !errors.Is(err, ErrTournamentExists) {
		t.Errorf("expected ErrTournamentExists, got %v", err)
	}
}

func TestTournamentCurrent_NoneActive(t *testing.T) {
	t.Parallel()
	repo := &mockTournamentRepo{
		listActiveFunc: func(ctx context.Context, guildID string) ([]*model.Tournament, error) {
			return nil, nil
		},
	}
	svc := newTestTournamentService(repo, nil)

	current, err := svc.Current(context.Background(), "g")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current != nil {
		t.Errorf("expected nil current, got %v", current)
	}
}

func TestTournamentCurrent_RepoError(t *testing.T) {
	t.Parallel()
	repoErr := errors.New("query failed")
	repo := &mockTournamentRepo{
		listActiveFunc: func(ctx context.Context, guildID string) ([]*model.Tournament, error) {
			return nil, repoErr
		},
	}
	svc := newTestTournamentService(repo, nil)

	if _, err := svc.Current(context.Background(), "g"); !errors.Is(err, repoErr) {
		t.Errorf("expected repo error to propagate, got %v", err)
	}
}

// The store gives no row-order guarantee, so Current must resolve two named
// active tournaments to the later-created one no matter how the rows come
// back.
func TestTournamentCurrent_LaterCreatedWinsRegardlessOfStoreOrder(t *testing.T) {
	t.Parallel()
	olderNamed := &model.Tournament{ID: snowflakeAt(older), Name: "Spring Open", Active: true}
	newerNamed := &model.Tournament{ID: snowflakeAt(newer), Name: "Winter Cup", Active: true}

	for name, rows := range map[string][]*model.Tournament{
		"creation order": {olderNamed, newerNamed},
		"reversed order": {newerNamed, olderNamed},
	} {
		rows := rows
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			repo := &mockTournamentRepo{
				listActiveFunc: func(ctx context.Context, guildID string) ([]*model.Tournament, error) {
					return rows, nil
				},
			}
			svc := newTestTournamentService(repo, nil)

			current, err := svc.Current(context.Background(), "g")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if current != newerNamed {
				t.Errorf("expected the later-created tournament %q, got %v", newerNamed.Name, current)
			}
		})
	}
}

func TestTournamentClose_ClosesCurrent(t *testing.T) {
	t.Parallel()
	current := &model.Tournament{ID: snowflakeAt(newer), Name: "Spring Open", Active: true}

	var deactivatedID string
	repo := &mockTournamentRepo{
		listActiveFunc: func(ctx context.Context, guildID string) ([]*model.Tournament, error) {
			return []*model.Tournament{current}, nil
		},
		setActiveFunc: func(ctx context.Context, id string, active bool) error {
			if active {
				t.Errorf("expected active=false, got true")
			}
			deactivatedID = id
			return nil
		},
	}
	svc := newTestTournamentService(repo, nil)

	closed, err := svc.Close(context.Background(), "g")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deactivatedID != current.ID {
		t.Errorf("expected SetActive on %q, got %q", current.ID, deactivatedID)
	}
	if closed == nil || closed.Active {
		t.Errorf("expected the closed tournament back with Active=false, got %v", closed)
	}
}

func TestTournamentClose_NothingOpen(t *testing.T) {
	t.Parallel()
	repo := &mockTournamentRepo{
		listActiveFunc: func(ctx context.Context, guildID string) ([]*model.Tournament, error) {
			return nil, nil
		},
		setActiveFunc: func(ctx context.Context, id string, active bool) error {
			t.Error("SetActive should not be called when nothing is open")
			return nil
		},
	}
	svc := newTestTournamentService(repo, nil)

	closed, err := svc.Close(context.Background(), "g")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closed != nil {
		t.Errorf("expected nil when nothing is open, got %v", closed)
	}
}

func TestTournamentClose_RepoError(t *testing.T) {
	t.Parallel()
	repoErr := errors.New("update failed")
	repo := &mockTournamentRepo{
		listActiveFunc: func(ctx context.Context, guildID string) ([]*model.Tournament, error) {
			return []*model.Tournament{{ID: snowflakeAt(newer), Name: "Spring Open", Active: true}}, nil
		},
		setActiveFunc: func(ctx context.Context, id string, active bool) error {
			return repoErr
		},
	}
	svc := newTestTournamentService(repo, nil)

	if _, err := svc.Close(context.Background(), "g"); !errors.Is(err, repoErr) {
		t.Errorf("expected repo error to propagate, got %v", err)
	}
}

func TestTournamentGuildView(t *testing.T) {
	t.Parallel()
	current := &model.Tournament{ID: snowflakeAt(newer), Name: "Spring Open", Active: true}
	repo := &mockTournamentRepo{
		listActiveFunc: func(ctx context.Context, guildID string) ([]*model.Tournament, error) {
			return []*model.Tournament{current}, nil
		},
	}
	settings := &mockSettingsRepo{
		getOrCreateFunc: func(ctx context.Context, guildID string) (*model.GuildSettings, error) {
			return &model.GuildSettings{GuildID: guildID}, nil
		},
	}
	svc := newTestTournamentService(repo, settings)

	view, err := svc.GuildView(context.Background(), "155149557720358912")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Settings == nil || view.Settings.GuildID != "155149557720358912" {
		t.Error("expected settings for the guild")
	}
	if view.Current != current {
		t.Errorf("expected the active tournament, got %v", view.Current)
	}
}
