package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgo/arena/bot/internal/model"
	"github.com/forgo/arena/bot/internal/pipeline"
	"github.com/forgo/arena/bot/internal/platform"
	"github.com/forgo/arena/bot/internal/service"
)

// Tournament command statuses and body shapes.
const (
	// StatusTournamentCreated carries a *TournamentCreated body.
	StatusTournamentCreated pipeline.Status = "tournament_created"

	// StatusTournamentList carries a []*model.Tournament body.
	StatusTournamentList pipeline.Status = "tournament_list"

	// StatusTournamentCurrent carries a *model.GuildView body; its Current
	// field is nil when no tournament is open, which is a valid state.
	StatusTournamentCurrent pipeline.Status = "tournament_current"

	// StatusTournamentClosed carries a *model.Tournament body, nil when the
	// guild had nothing open to close.
	StatusTournamentClosed pipeline.Status = "tournament_closed"

	// StatusChannelSet carries the channel ID as a string body.
	StatusChannelSet pipeline.Status = "channel_set"
)

// TournamentCreated is the create command's success body.
type TournamentCreated struct {
	Tournament        *model.Tournament
	AnnounceChannelID string
}

// CreateParams are the validated inputs of "tournament create".
type CreateParams struct {
	GuildID string
	ID      string
	Name    string
}

// GuildParams are the validated inputs of the read-only tournament commands.
type GuildParams struct {
	GuildID string
}

// ChannelParams are the validated inputs of "tournament channel".
type ChannelParams struct {
	GuildID   string
	ChannelID string
}

var (
	tournamentMeta = pipeline.ConstraintMap{
		platform.MetaGuildID: {pipeline.SnowflakeID()},
	}
	tournamentCreateMeta = pipeline.ConstraintMap{
		platform.MetaGuildID: {pipeline.SnowflakeID()},
		pipeline.FieldAlways: {pipeline.RequiredOption("name")},
	}
	tournamentCreateOptions = pipeline.ConstraintMap{
		"name": {pipeline.NonEmpty(), pipeline.LengthBetween(1, model.MaxTournamentNameLength)},
	}
	tournamentChannelMeta = pipeline.ConstraintMap{
		platform.MetaGuildID:   {pipeline.SnowflakeID()},
		platform.MetaChannelID: {pipeline.SnowflakeID()},
	}
)

// TournamentConfig holds the tournament commands' collaborators.
type TournamentConfig struct {
	Tournaments *service.TournamentService
}

// NewTournamentCreate builds "tournament create": open a new tournament for
// the guild. The record's ID is the interaction's snowflake, so creation
// time needs no extra column. Existing active tournaments are left alone.
func NewTournamentCreate(cfg TournamentConfig) *pipeline.Command[CreateParams] {
	t := &tournamentCommand{tournaments: cfg.Tournaments}
	return &pipeline.Command[CreateParams]{
		Name:     "tournament create",
		Validate: tournamentCreateValidate,
		Solve:    t.solveCreate,
		Describe: pipeline.DescribeMap{
			StatusTournamentCreated: describeTournamentCreated,
		},
	}
}

// NewTournamentList builds "tournament list": every tournament the guild has
// hosted, active ones marked.
func NewTournamentList(cfg TournamentConfig) *pipeline.Command[GuildParams] {
	t := &tournamentCommand{tournaments: cfg.Tournaments}
	return &pipeline.Command[GuildParams]{
		Name:     "tournament list",
		Validate: guildValidate,
		Solve:    t.solveList,
		Describe: pipeline.DescribeMap{
			StatusTournamentList: describeTournamentList,
		},
	}
}

// NewTournamentCurrent builds "tournament current": the guild's resolved
// settings-plus-current-tournament view.
func NewTournamentCurrent(cfg TournamentConfig) *pipeline.Command[GuildParams] {
	t := &tournamentCommand{tournaments: cfg.Tournaments}
	return &pipeline.Command[GuildParams]{
		Name:     "tournament current",
		Validate: guildValidate,
		Solve:    t.solveCurrent,
		Describe: pipeline.DescribeMap{
			StatusTournamentCurrent: describeTournamentCurrent,
		},
	}
}

// NewTournamentClose builds "tournament close": deactivate the guild's
// current tournament. Closing when nothing is open is not an error.
func NewTournamentClose(cfg TournamentConfig) *pipeline.Command[GuildParams] {
	t := &tournamentCommand{tournaments: cfg.Tournaments}
	return &pipeline.Command[GuildParams]{
		Name:     "tournament close",
		Validate: guildValidate,
		Solve:    t.solveClose,
		Describe: pipeline.DescribeMap{
			StatusTournamentClosed: describeTournamentClosed,
		},
	}
}

// NewTournamentChannel builds "tournament channel": make the invoking
// channel the target for tournament announcements.
func NewTournamentChannel(cfg TournamentConfig) *pipeline.Command[ChannelParams] {
	t := &tournamentCommand{tournaments: cfg.Tournaments}
	return &pipeline.Command[ChannelParams]{
		Name:     "tournament channel",
		Validate: tournamentChannelValidate,
		Solve:    t.solveChannel,
		Describe: pipeline.DescribeMap{
			StatusChannelSet: describeChannelSet,
		},
	}
}

type tournamentCommand struct {
	tournaments *service.TournamentService
}

func tournamentCreateValidate(inter *platform.Interaction) (CreateParams, *pipeline.Outcome, error) {
	if verr := pipeline.CheckConstraints(inter, tournamentCreateMeta, tournamentCreateOptions); verr != nil {
		return CreateParams{}, pipeline.ValidationFailed(verr), nil
	}

	opt, _ := inter.Option("name")
	name, ok := opt.String()
	if !ok {
		return CreateParams{}, nil, fmt.Errorf("name option: unexpected value type %T", opt.Value)
	}

	return CreateParams{
		GuildID: inter.GuildID,
		ID:      inter.ID,
		Name:    strings.TrimSpace(name),
	}, nil, nil
}

func guildValidate(inter *platform.Interaction) (GuildParams, *pipeline.Outcome, error) {
	if verr := pipeline.CheckConstraints(inter, tournamentMeta, nil); verr != nil {
		return GuildParams{}, pipeline.ValidationFailed(verr), nil
	}
	return GuildParams{GuildID: inter.GuildID}, nil, nil
}

func tournamentChannelValidate(inter *platform.Interaction) (ChannelParams, *pipeline.Outcome, error) {
	if verr := pipeline.CheckConstraints(inter, tournamentChannelMeta, nil); verr != nil {
		return ChannelParams{}, pipeline.ValidationFailed(verr), nil
	}
	return ChannelParams{
		GuildID:   inter.GuildID,
		ChannelID: inter.ChannelID,
	}, nil, nil
}

func (t *tournamentCommand) solveCreate(ctx context.Context, params CreateParams) *pipeline.Outcome {
	tournament := &model.Tournament{
		ID:      params.ID,
		Name:    params.Name,
		GuildID: params.GuildID,
		Active:  true,
	}

	if err := t.tournaments.Create(ctx, tournament); err != nil {
		return pipeline.UnknownFailure()
	}

	settings, err := t.tournaments.Settings(ctx, params.GuildID)
	if err != nil {
		return pipeline.UnknownFailure()
	}

	return pipeline.Result(StatusTournamentCreated, &TournamentCreated{
		Tournament:        tournament,
		AnnounceChannelID: settings.NotificationChannelID,
	})
}

func (t *tournamentCommand) solveList(ctx context.Context, params GuildParams) *pipeline.Outcome {
	tournaments, err := t.tournaments.List(ctx, params.GuildID)
	if err != nil {
		return pipeline.UnknownFailure()
	}
	return pipeline.Result(StatusTournamentList, tournaments)
}

func (t *tournamentCommand) solveCurrent(ctx context.Context, params GuildParams) *pipeline.Outcome {
	view, err := t.tournaments.GuildView(ctx, params.GuildID)
	if err != nil {
		return pipeline.UnknownFailure()
	}
	return pipeline.Result(StatusTournamentCurrent, view)
}

func (t *tournamentCommand) solveClose(ctx context.Context, params GuildParams) *pipeline.Outcome {
	closed, err := t.tournaments.Close(ctx, params.GuildID)
	if err != nil {
		return pipeline.UnknownFailure()
	}
	return pipeline.Result(StatusTournamentClosed, closed)
}

func (t *tournamentCommand) solveChannel(ctx context.Context, params ChannelParams) *pipeline.Outcome {
	if err := t.tournaments.SetAnnounceChannel(ctx, params.GuildID, params.ChannelID); err != nil {
		return pipeline.UnknownFailure()
	}
	return pipeline.Result(StatusChannelSet, params.ChannelID)
}

func describeTournamentCreated(o *pipeline.Outcome) platform.Message {
	created, ok := o.Body.(*TournamentCreated)
	if !ok {
		return platform.Message{Content: "Tournament created.", Ephemeral: true}
	}
	content := fmt.Sprintf("🏆 **%s** is open! Sign up and start playing.", created.Tournament.Name)
	if created.AnnounceChannelID != "" {
		content += fmt.Sprintf(" Announcements go to <#%s>.", created.AnnounceChannelID)
	}
	return platform.Message{Content: content}
}

func describeTournamentClosed(o *pipeline.Outcome) platform.Message {
	closed, ok := o.Body.(*model.Tournament)
	if !ok || closed == nil {
		return platform.Message{Content: "No tournament is currently running.", Ephemeral: true}
	}
	return platform.Message{
		Content: fmt.Sprintf("🏁 **%s** is closed. Final standings are locked in.", closed.Name),
	}
}

func describeChannelSet(o *pipeline.Outcome) platform.Message {
	channelID, ok := o.Body.(string)
	if !ok {
		return platform.Message{Content: "Announcement channel updated.", Ephemeral: true}
	}
	return platform.Message{
		Content:   fmt.Sprintf("Tournament announcements will be posted in <#%s>.", channelID),
		Ephemeral: true,
	}
}

func describeTournamentList(o *pipeline.Outcome) platform.Message {
	tournaments, ok := o.Body.([]*model.Tournament)
	if !ok || len(tournaments) == 0 {
		return platform.Message{Content: "This guild hasn't hosted any tournaments yet.", Ephemeral: true}
	}

	var b strings.Builder
	for _, t := range tournaments {
		if t.Active {
			fmt.Fprintf(&b, "• **%s** (active)\n", t.Name)
		} else {
			fmt.Fprintf(&b, "• %s\n", t.Name)
		}
	}

	return platform.Message{
		Embeds: []platform.Embed{{
			Title:       "Tournaments",
			Description: b.String(),
		}},
	}
}

func describeTournamentCurrent(o *pipeline.Outcome) platform.Message {
	view, ok := o.Body.(*model.GuildView)
	if !ok || view.Current == nil {
		return platform.Message{Content: "No tournament is currently running.", Ephemeral: true}
	}
	return platform.Message{
		Content: fmt.Sprintf("The current tournament is **%s**.", view.Current.Name),
	}
}
