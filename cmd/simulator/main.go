package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/keremaydin/basketball-sim/internal/loader"
	"github.com/keremaydin/basketball-sim/internal/tournament"
)

func main() {
	var (
		groupsFile      = flag.String("groups", "data/groups.json", "path to group rosters (.json/.yaml)")
		exhibitionsFile = flag.String("exhibitions", "data/exhibitions.json", "path to exhibition history (.json/.yaml)")
		namesFile       = flag.String("names", "", "optional path to code->display name table")
		seed            = flag.Int64("seed", 0, "random seed (0 uses current time)")
		thirdPlace      = flag.Bool("third-place", false, "play a real third-place match between semifinal losers")
	)
	flag.Parse()

	groups, err := loader.LoadGroups(*groupsFile)
	if err != nil {
		log.Fatalf("loading groups: %v", err)
	}
	exhibitions, err := loader.LoadExhibitions(*exhibitionsFile)
	if err != nil {
		log.Fatalf("loading exhibitions: %v", err)
	}
	names := map[string]string{}
	if *namesFile != "" {
		names, err = loader.LoadNames(*namesFile)
		if err != nil {
			log.Fatalf("loading names: %v", err)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	res, err := tournament.Run(groups, exhibitions, rng, tournament.Options{ThirdPlacePlayoff: *thirdPlace})
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}

	display := func(code string) string {
		if name, ok := names[code]; ok {
			return name
		}
		return code
	}

	fmt.Printf("Seed: %d\n\n", *seed)
	for _, gr := range res.Groups {
		fmt.Printf("Group %s\n", gr.Label)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Team\tW\tL\tPts\tPF\tPA\tDiff")
		for _, e := range gr.Table {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%+d\n",
				display(e.Team.Name), e.Wins, e.Losses, e.Points, e.Scored, e.Conceded, e.GoalDiff())
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("Quarterfinal draw:")
	for _, p := range res.Quarterfinals {
		fmt.Printf("  %s - %s\n", display(p.Home.Name), display(p.Away.Name))
	}
	fmt.Println()

	for _, m := range res.Knockout {
		line := fmt.Sprintf("%-13s %s %d - %d %s",
			m.Stage, display(m.Home.Name), m.HomeScore, m.AwayScore, display(m.Away.Name))
		if m.WentToShootout {
			line += fmt.Sprintf(" (pens %d-%d)", m.HomePenalties, m.AwayPenalties)
		}
		fmt.Println(line)
	}
	fmt.Println()

	fmt.Printf("Champion:    %s\n", display(res.Champion.Name))
	fmt.Printf("Runner-up:   %s\n", display(res.RunnerUp.Name))
	fmt.Printf("Third place: %s\n", display(res.Third.Name))
}
