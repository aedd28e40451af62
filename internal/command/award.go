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

// StatusPointsAwarded is the award command's success status; its body is
// *PointsAwarded.
const StatusPointsAwarded pipeline.Status = "points_awarded"

// AwardParams are the validated inputs of the award command.
type AwardParams struct {
	GuildID        string
	TargetMemberID string
	Points         int
}

// PointsAwarded is the award command's success body.
type PointsAwarded struct {
	Member   *platform.Member
	Points   int
	Standing *model.Standing
}

var (
	awardMeta = pipeline.ConstraintMap{
		platform.MetaGuildID: {pipeline.SnowflakeID()},
		pipeline.FieldAlways: {
			pipeline.RequiredOption("member"),
			pipeline.RequiredOption("points"),
		},
	}
	awardOptions = pipeline.ConstraintMap{
		"member": {pipeline.SnowflakeID()},
		"points": {pipeline.IntBetween(model.MinPointAward, model.MaxPointAward)},
	}
)

// AwardConfig holds the award command's collaborators.
type AwardConfig struct {
	Client      platform.Client
	Standings   *service.StandingService
	Tournaments *service.TournamentService
}

// NewAward builds the award command: grant points to a member, credited to
// both their career standing and, when a tournament is running, their
// standing in it.
func NewAward(cfg AwardConfig) *pipeline.Command[AwardParams] {
	a := &awardCommand{
		client:      cfg.Client,
		standings:   cfg.Standings,
		tournaments: cfg.Tournaments,
	}
	return &pipeline.Command[AwardParams]{
		Name:     "award",
		Validate: awardValidate,
		Solve:    a.solve,
		Describe: pipeline.DescribeMap{
			StatusPointsAwarded: describeAward,
		},
	}
}

type awardCommand struct {
	client      platform.Client
	standings   *service.StandingService
	tournaments *service.TournamentService
}

func awardValidate(inter *platform.Interaction) (AwardParams, *pipeline.Outcome, error) {
	if verr := pipeline.CheckConstraints(inter, awardMeta, awardOptions); verr != nil {
		return AwardParams{}, pipeline.ValidationFailed(verr), nil
	}

	memberOpt, _ := inter.Option("member")
	target, ok := memberOpt.UserID()
	if !ok {
		return AwardParams{}, nil, fmt.Errorf("member option: unexpected value type %T", memberOpt.Value)
	}

	pointsOpt, _ := inter.Option("points")
	points, ok := pointsOpt.Int()
	if !ok {
		return AwardParams{}, nil, fmt.Errorf("points option: unexpected value type %T", pointsOpt.Value)
	}

	return AwardParams{
		GuildID:        inter.GuildID,
		TargetMemberID: target,
		Points:         points,
	}, nil, nil
}

func (a *awardCommand) solve(ctx context.Context, params AwardParams) *pipeline.Outcome {
	var (
		member  *platform.Member
		current *model.Tournament
	)

	// Member and current-tournament lookups are independent; the award write
	// depends on the tournament result and runs after the join.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := a.client.GuildMember(gctx, params.GuildID, params.TargetMemberID)
		if err != nil {
			return err
		}
		member = m
		return nil
	})
	g.Go(func() error {
		t, err := a.tournaments.Current(gctx, params.GuildID)
		if err != nil {
			return err
		}
		current = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return pipeline.UnknownFailure()
	}

	tournamentID := ""
	if current != nil {
		tournamentID = current.ID
	}

	standing, err := a.standings.Award(ctx, params.GuildID, params.TargetMemberID, tournamentID, params.Points)
	if err != nil {
		return pipeline.UnknownFailure()
	}

	return pipeline.Result(StatusPointsAwarded, &PointsAwarded{
		Member:   member,
		Points:   params.Points,
		Standing: standing,
	})
}

func describeAward(o *pipeline.Outcome) platform.Message {
	awarded, ok := o.Body.(*PointsAwarded)
	if !ok {
		return platform.Message{Content: "Points awarded.", Ephemeral: true}
	}
	return platform.Message{
		Content: fmt.Sprintf("Awarded %d points to **%s** (now %d).",
			awarded.Points, awarded.Member.DisplayName, awarded.Standing.Points),
	}
}
