package tournament

import (
	"fmt"
	"math/rand"
)

// Options tune a tournament run.
type Options struct {
	// ThirdPlacePlayoff plays a real match between the semifinal losers.
	// Off by default: the original simulator reported the final's loser as
	// third place, and we keep that for compatibility.
	ThirdPlacePlayoff bool

	// Engine overrides the match engine; nil uses the Poisson simulator
	// seeded from the run's random source.
	Engine KnockoutEngine
}

// Result is the complete outcome of a simulated tournament, exposed as plain
// data so presentation and persistence layers can format it freely.
type Result struct {
	Groups        []GroupResult
	Form          map[string]int
	Quarterfinals []Pair
	Knockout      []KnockoutMatch
	Champion      *Team
	RunnerUp      *Team
	Third         *Team
}

// Run simulates the whole tournament: exhibition form, group round robins,
// the constrained knockout draw, and the elimination rounds. The pipeline is
// strictly sequential and consumes randomness in a fixed order, so the same
// rosters, history and seed always reproduce the same Result.
func Run(groups []Group, exhibitions map[string][]ExhibitionMatch, rng *rand.Rand, opts Options) (*Result, error) {
	engine := opts.Engine
	if engine == nil {
		engine = NewSimulator(rng)
	}

	form := ComputeForm(exhibitions)
	groupResults, played := PlayGroups(groups, engine)

	var entries []*TableEntry
	for _, gr := range groupResults {
		entries = append(entries, gr.Table...)
	}
	ranked := RankEntries(entries)
	if len(ranked) < TeamRankLimit {
		return nil, fmt.Errorf("tournament: need at least %d teams across groups, have %d", TeamRankLimit, len(ranked))
	}

	pairs, err := DrawQuarterfinals(ranked, played)
	if err != nil {
		return nil, err
	}

	bracket := RunBracket(pairs, form, engine, opts.ThirdPlacePlayoff)

	return &Result{
		Groups:        groupResults,
		Form:          form,
		Quarterfinals: pairs,
		Knockout:      bracket.Matches,
		Champion:      bracket.Champion,
		RunnerUp:      bracket.RunnerUp,
		Third:         bracket.Third,
	}, nil
}
