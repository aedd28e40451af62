package command

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/forgo/arena/bot/internal/model"
	"github.com/forgo/arena/bot/internal/pipeline"
	"github.com/forgo/arena/bot/internal/platform"
	"github.com/forgo/arena/bot/internal/service"
)

// StatusProfileStats is the profile command's success status; its body is
// *ProfileStats.
const StatusProfileStats pipeline.Status = "profile_stats"

// ProfileParams are the validated inputs of the profile command.
type ProfileParams struct {
	GuildID        string
	TargetMemberID string
}

// ProfileStats is the assembled profile lookup result. Tournament and
// TournamentStanding are nil when the guild has no active tournament.
type ProfileStats struct {
	Member             *platform.Member
	Career             *model.Standing
	Tournament         *model.Tournament
	TournamentStanding *model.Standing
}

var (
	profileMeta = pipeline.ConstraintMap{
		platform.MetaGuildID:  {pipeline.SnowflakeID()},
		platform.MetaMemberID: {pipeline.SnowflakeID()},
	}
	profileOptions = pipeline.ConstraintMap{
		"member": {pipeline.SnowflakeID()},
	}
)

// ProfileConfig holds the profile command's collaborators.
type ProfileConfig struct {
	Client      platform.Client
	Standings   *service.StandingService
	Tournaments *service.TournamentService
}

// NewProfile builds the profile command: look up a member's career and
// current-tournament standings. With no member option the invoker is the
// target.
func NewProfile(cfg ProfileConfig) *pipeline.Command[ProfileParams] {
	p := &profileCommand{
		client:      cfg.Client,
		standings:   cfg.Standings,
		tournaments: cfg.Tournaments,
	}
	return &pipeline.Command[ProfileParams]{
		Name:     "profile",
		Validate: profileValidate,
		Solve:    p.solve,
		Describe: pipeline.DescribeMap{
			StatusProfileStats: describeProfile,
		},
	}
}

type profileCommand struct {
	client      platform.Client
	standings   *service.StandingService
	tournaments *service.TournamentService
}

func profileValidate(inter *platform.Interaction) (ProfileParams, *pipeline.Outcome, error) {
	if verr := pipeline.CheckConstraints(inter, profileMeta, profileOptions); verr != nil {
		return ProfileParams{}, pipeline.ValidationFailed(verr), nil
	}

	// Default to the invoking member when no target is supplied.
	target := inter.Member.ID
	if opt, ok := inter.Option("member"); ok {
		id, ok := opt.UserID()
		if !ok {
			return ProfileParams{}, nil, fmt.Errorf("member option: unexpected value type %T", opt.Value)
		}
		target = id
	}

	return ProfileParams{
		GuildID:        inter.GuildID,
		TargetMemberID: target,
	}, nil, nil
}

// solve fetches the member, their career standing, and their standing in the
// current tournament. The three lookups have no data dependency on each
// other, so they run concurrently and join before assembly.
func (p *profileCommand) solve(ctx context.Context, params ProfileParams) *pipeline.Outcome {
	stats := &ProfileStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		member, err := p.client.GuildMember(gctx, params.GuildID, params.TargetMemberID)
		if err != nil {
			return err
		}
		stats.Member = member
		return nil
	})
	g.Go(func() error {
		career, err := p.standings.Career(gctx, params.GuildID, params.TargetMemberID)
		if err != nil {
			return err
		}
		stats.Career = career
		return nil
	})
	g.Go(func() error {
		current, err := p.tournaments.Current(gctx, params.GuildID)
		if err != nil {
			return err
		}
		if current == nil {
			return nil
		}
		standing, err := p.standings.Tournament(gctx, params.GuildID, params.TargetMemberID, current.ID)
		if err != nil {
			return err
		}
		stats.Tournament = current
		stats.TournamentStanding = standing
		return nil
	})

	if err := g.Wait(); err != nil {
		return pipeline.UnknownFailure()
	}

	return pipeline.Result(StatusProfileStats, stats)
}

func describeProfile(o *pipeline.Outcome) platform.Message {
	stats, ok := o.Body.(*ProfileStats)
	if !ok {
		return platform.Message{Content: "Profile unavailable.", Ephemeral: true}
	}

	embed := platform.Embed{
		Title: stats.Member.DisplayName,
		Fields: []platform.EmbedField{
			{
				Name:   "Career",
				Value:  fmt.Sprintf("%d points (%d-%d)", stats.Career.Points, stats.Career.Wins, stats.Career.Losses),
				Inline: true,
			},
		},
	}

	if stats.Tournament != nil {
		embed.Fields = append(embed.Fields, platform.EmbedField{
			Name:   stats.Tournament.Name,
			Value:  fmt.Sprintf("%d points (%d-%d)", stats.TournamentStanding.Points, stats.TournamentStanding.Wins, stats.TournamentStanding.Losses),
			Inline: true,
		})
	} else {
		embed.Description = "No tournament is currently running."
	}

	return platform.Message{Embeds: []platform.Embed{embed}}
}
