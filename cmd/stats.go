package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/tutorbase/timo/internal/progress"
	"github.com/tutorbase/timo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored learning progress per student",
	RunE:  runStats,
}

var (
	statsNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#14B8A6"))
	statsWeakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	statsDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

func runStats(cmd *cobra.Command, args []string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	repo := st.ProgressRepo()

	students, err := repo.Students(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		fmt.Println(statsDimStyle.Render("No stored progress yet."))
		return nil
	}

	for _, id := range students {
		p, err := repo.LoadProgress(ctx, id)
		if err != nil {
			return fmt.Errorf("load %s: %w", id, err)
		}
		printStudent(p)
	}
	return nil
}

func printStudent(p *progress.LearningProgress) {
	fmt.Println(statsNameStyle.Render(p.StudentID))
	fmt.Printf("  lessons completed: %d\n", len(p.History))

	for _, s := range progress.AllSubjects() {
		sig, ok := p.SignalsFor(s)
		if !ok {
			continue
		}
		rec := p.LatestRecordFor(s)
		if rec == nil {
			continue
		}
		line := fmt.Sprintf("  %-17s tier %-8s rating %4.0f  mastery %.2f  ability %+.2f",
			progress.SubjectDisplayName(s),
			rec.ResultingTier.DisplayName(),
			sig.Rating, sig.Mastery, sig.Ability)
		if wa, weak := p.WeakAreaFor(s); weak && wa.ConceptScore < 0.5 {
			line += statsWeakStyle.Render("  [weak]")
		}
		fmt.Println(line)
	}
}
