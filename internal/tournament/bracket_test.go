package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queueEngine replays queued scores and shootout rounds in call order.
type queueEngine struct {
	scores [][2]int
	pens   [][2]int
	calls  []scriptCall
}

func (e *queueEngine) Play(home, away *Team, homeForm, awayForm int) (int, int) {
	e.calls = append(e.calls, scriptCall{home.Name, away.Name, homeForm, awayForm})
	s := e.scores[0]
	e.scores = e.scores[1:]
	return s[0], s[1]
}

func (e *queueEngine) Shootout() (int, int) {
	p := e.pens[0]
	e.pens = e.pens[1:]
	return p[0], p[1]
}

func quarterfinalPairs() []Pair {
	names := [][2]string{{"T1", "T8"}, {"T2", "T7"}, {"T3", "T6"}, {"T4", "T5"}}
	pairs := make([]Pair, len(names))
	for i, n := range names {
		pairs[i] = Pair{Home: &Team{Name: n[0]}, Away: &Team{Name: n[1]}}
	}
	return pairs
}

func TestRunBracketAdvancesInBracketOrder(t *testing.T) {
	engine := &queueEngine{scores: [][2]int{
		{80, 70}, // QF1: T1
		{60, 65}, // QF2: T7
		{90, 85}, // QF3: T3
		{70, 75}, // QF4: T5
		{88, 80}, // SF1: T1 over T7
		{79, 82}, // SF2: T5 over T3
		{77, 81}, // Final: T5 over T1
	}}

	res := RunBracket(quarterfinalPairs(), nil, engine, false)

	require.Len(t, res.Matches, 7)
	assert.Equal(t, "T5", res.Champion.Name)
	assert.Equal(t, "T1", res.RunnerUp.Name)
	// Reference behavior: the final's loser doubles as third place.
	assert.Equal(t, "T1", res.Third.Name)

	// Winners of adjacent pairs meet, with no re-seeding between rounds.
	assert.Equal(t, "T1", engine.calls[4].home)
	assert.Equal(t, "T7", engine.calls[4].away)
	assert.Equal(t, "T3", engine.calls[5].home)
	assert.Equal(t, "T5", engine.calls[5].away)
	assert.Equal(t, "T1", engine.calls[6].home)
	assert.Equal(t, "T5", engine.calls[6].away)
}

func TestRunBracketShootoutLoopsUntilDecided(t *testing.T) {
	engine := &queueEngine{
		scores: [][2]int{
			{80, 80}, // QF1 ties
			{60, 65},
			{90, 85},
			{70, 75},
			{88, 80},
			{79, 82},
			{77, 81},
		},
		// Two tied shootout rounds before a decisive one.
		pens: [][2]int{{3, 3}, {2, 2}, {4, 1}},
	}

	res := RunBracket(quarterfinalPairs(), nil, engine, false)

	qf := res.Matches[0]
	assert.True(t, qf.WentToShootout)
	assert.Equal(t, 4, qf.HomePenalties)
	assert.Equal(t, 1, qf.AwayPenalties)
	assert.Equal(t, "T1", qf.Winner().Name)
	assert.Empty(t, engine.pens, "all shootout rounds consumed")
}

func TestRunBracketThirdPlacePlayoff(t *testing.T) {
	engine := &queueEngine{scores: [][2]int{
		{80, 70}, // QF1: T1
		{60, 65}, // QF2: T7
		{90, 85}, // QF3: T3
		{70, 75}, // QF4: T5
		{88, 80}, // SF1: T1, T7 eliminated
		{79, 82}, // SF2: T5, T3 eliminated
		{77, 81}, // Final: T5
		{66, 59}, // Third place: T7 over T3
	}}

	res := RunBracket(quarterfinalPairs(), nil, engine, true)

	require.Len(t, res.Matches, 8)
	third := res.Matches[7]
	assert.Equal(t, ThirdPlace, third.Stage)
	assert.Equal(t, "T7", third.Home.Name)
	assert.Equal(t, "T3", third.Away.Name)
	assert.Equal(t, "T7", res.Third.Name)
	assert.Equal(t, "T5", res.Champion.Name)
	assert.Equal(t, "T1", res.RunnerUp.Name)
}

func TestRunBracketPassesForm(t *testing.T) {
	form := map[string]int{"T1": 12, "T8": -4}
	engine := &queueEngine{scores: [][2]int{
		{80, 70}, {60, 65}, {90, 85}, {70, 75}, {88, 80}, {79, 82}, {77, 81},
	}}

	RunBracket(quarterfinalPairs(), form, engine, false)

	first := engine.calls[0]
	assert.Equal(t, 12, first.homeForm)
	assert.Equal(t, -4, first.awayForm)
	// Teams without exhibition history default to zero.
	assert.Zero(t, engine.calls[1].homeForm)
	assert.Zero(t, engine.calls[1].awayForm)
}
