package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/tutorbase/timo/internal/ability"
	"github.com/tutorbase/timo/internal/difficulty"
	"github.com/tutorbase/timo/internal/progress"
)

var (
	simLessons int
	simSeed    uint64
	simSkill   float64
	simSubject string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a seeded lesson stream through the difficulty engine",
	Long: "Simulates a student with a fixed latent skill answering a stream of " +
		"lessons, and prints the tier trajectory the engine decides. The run is " +
		"fully determined by the seed.",
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simLessons, "lessons", 20, "Number of lessons to simulate")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 1, "RNG seed")
	simulateCmd.Flags().Float64Var(&simSkill, "skill", 0.5, "Latent student ability on the IRT scale")
	simulateCmd.Flags().StringVar(&simSubject, "subject", string(progress.SubjectArithmetic), "Subject to practice")
}

var (
	simHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	simUpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	simDownStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	simHoldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

func runSimulate(cmd *cobra.Command, args []string) error {
	subject := progress.Subject(simSubject)
	engine := difficulty.NewEngine(difficulty.DefaultConfig())
	p := progress.NewLearningProgress("simulated-student")
	rng := rand.New(rand.NewPCG(simSeed, simSeed))

	fmt.Println(simHeaderStyle.Render(fmt.Sprintf(
		"Simulating %d %s lessons (skill %.2f, seed %d)",
		simLessons, progress.SubjectDisplayName(subject), simSkill, simSeed)))

	now := time.Now().UTC()
	tier := engine.Config().DefaultTier

	for i := 0; i < simLessons; i++ {
		lesson := progress.NewLesson(p.StudentID, subject)
		lesson.Start()

		accuracy, elapsed := simulateOutcome(rng, simSkill, tier, engine.Config())
		now = now.Add(6 * time.Hour)
		lesson.Complete(accuracy, elapsed, now)

		next, err := engine.CalculateAfterLesson(p, lesson)
		if err != nil {
			return fmt.Errorf("lesson %d: %w", i+1, err)
		}
		sig, err := engine.SignalsAfterLesson(p, lesson)
		if err != nil {
			return fmt.Errorf("lesson %d signals: %w", i+1, err)
		}
		if err := p.ApplyLesson(lesson, next, sig); err != nil {
			return fmt.Errorf("lesson %d apply: %w", i+1, err)
		}

		fmt.Printf("  %2d. acc %.2f  time %4.0fs  %s\n",
			i+1, accuracy, elapsed, renderTransition(tier, next))
		tier = next
	}

	sig, _ := p.SignalsFor(subject)
	fmt.Println(simHeaderStyle.Render(fmt.Sprintf(
		"Final: tier %s, rating %.0f, mastery %.2f, ability %.2f",
		tier.DisplayName(), sig.Rating, sig.Mastery, sig.Ability)))
	return nil
}

// simulateOutcome draws a lesson accuracy and response time for a
// student of the given latent skill at the given tier.
func simulateOutcome(rng *rand.Rand, skill float64, tier progress.Tier, cfg difficulty.Config) (accuracy, elapsedSecs float64) {
	pCorrect := ability.ProbabilityCorrect(skill, difficulty.TierItemParams(tier))

	const questions = 10
	correct := 0
	for i := 0; i < questions; i++ {
		if rng.Float64() < pCorrect {
			correct++
		}
	}
	accuracy = float64(correct) / questions

	budget := cfg.TimeBudgetSecs[tier]
	elapsedSecs = budget * (0.6 + 0.8*rng.Float64())
	return accuracy, elapsedSecs
}

func renderTransition(from, to progress.Tier) string {
	switch {
	case to > from:
		return simUpStyle.Render(fmt.Sprintf("%s -> %s", from.DisplayName(), to.DisplayName()))
	case to < from:
		return simDownStyle.Render(fmt.Sprintf("%s -> %s", from.DisplayName(), to.DisplayName()))
	default:
		return simHoldStyle.Render(from.DisplayName())
	}
}
