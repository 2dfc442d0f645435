package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rpandey/mentora/internal/app"
	"github.com/rpandey/mentora/internal/engine"
	"github.com/rpandey/mentora/internal/llm"
	"github.com/rpandey/mentora/internal/safety"
	"github.com/rpandey/mentora/internal/session"
	"github.com/rpandey/mentora/internal/store"
	"github.com/rpandey/mentora/internal/tutor"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start a tutoring session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

// addChatFlags registers the session flags. The root command runs chat
// directly, so both commands carry the same set.
func addChatFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "teach_me", "Session mode: teach_me, clarify_doubts, or exam")
	cmd.Flags().String("topic", "", "Topic for clarify_doubts mode")
	cmd.Flags().String("plan", "", "Path to a lesson plan JSON file (teach_me mode)")
	cmd.Flags().String("exam", "", "Path to an exam questions JSON file (exam mode)")
	cmd.Flags().String("student", "", "Student ID for cross-session progress (defaults to name)")
	cmd.Flags().String("name", "there", "Student name")
	cmd.Flags().Int("grade", 7, "Student grade level")
	cmd.Flags().Bool("no-extension", false, "End at plan completion without extension turns")
	cmd.Flags().Bool("recheck", false, "Re-apply the safety gate to generated tutor messages")
}

func init() {
	addChatFlags(chatCmd)
}

// runChat opens the store, builds the turn orchestrator, and launches
// the chat TUI.
func runChat(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set MENTORA_LLM_PROVIDER (or a provider API key) and try again.")
		return err
	}

	start, err := buildStartRequest(cmd)
	if err != nil {
		return err
	}

	// Returning students pick up their prior mastery.
	if start.Student.ID != "" {
		snap, err := st.SnapshotRepo().Latest(ctx, start.Student.ID)
		if err == nil && snap != nil {
			start.Mastery = snap.Data
		}
	}

	recheck, _ := cmd.Flags().GetBool("recheck")
	cfg := engine.DefaultConfig()
	cfg.RecheckTutorOutput = recheck

	eng := engine.New(
		st.SessionRepo(),
		st.EventRepo(),
		safety.NewGate(provider, safety.DefaultConfig()),
		tutor.NewGenerator(provider, tutor.DefaultConfig()),
		cfg,
	).WithSnapshots(st.SnapshotRepo())

	return app.Run(app.Options{Engine: eng, Start: start})
}

func buildStartRequest(cmd *cobra.Command) (engine.StartRequest, error) {
	modeFlag, _ := cmd.Flags().GetString("mode")
	name, _ := cmd.Flags().GetString("name")
	grade, _ := cmd.Flags().GetInt("grade")
	studentID, _ := cmd.Flags().GetString("student")
	if studentID == "" && name != "there" {
		studentID = name
	}
	noExt, _ := cmd.Flags().GetBool("no-extension")

	req := engine.StartRequest{
		Student:     session.StudentProfile{ID: studentID, Name: name, GradeLevel: grade},
		Mode:        session.Mode(modeFlag),
		NoExtension: noExt,
	}

	switch req.Mode {
	case session.ModeTeachMe:
		planPath, _ := cmd.Flags().GetString("plan")
		plan, err := loadPlan(planPath)
		if err != nil {
			return req, err
		}
		req.Plan = plan

	case session.ModeClarifyDoubts:
		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			return req, fmt.Errorf("clarify_doubts mode needs --topic")
		}
		req.Topic = topic

	case session.ModeExam:
		examPath, _ := cmd.Flags().GetString("exam")
		if examPath == "" {
			return req, fmt.Errorf("exam mode needs --exam <questions.json>")
		}
		questions, err := loadExam(examPath)
		if err != nil {
			return req, err
		}
		req.ExamQuestions = questions

	default:
		return req, fmt.Errorf("unknown mode %q (teach_me, clarify_doubts, or exam)", modeFlag)
	}

	return req, nil
}

// loadPlan reads a lesson plan JSON file, or returns the built-in
// starter plan when no path is given.
func loadPlan(path string) (*session.Plan, error) {
	if path == "" {
		return starterPlan(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	var plan session.Plan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if len(plan.Steps) == 0 {
		return nil, fmt.Errorf("plan %s has no steps", path)
	}
	return &plan, nil
}

func loadExam(path string) ([]session.ExamQuestion, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exam: %w", err)
	}
	var questions []session.ExamQuestion
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("parse exam %s: %w", path, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("exam %s has no questions", path)
	}
	return questions, nil
}

// starterPlan is used when teach_me is started without a plan file.
func starterPlan() *session.Plan {
	return &session.Plan{Steps: []session.PlanStep{
		{
			ID:              "fractions-equivalence",
			Title:           "Equivalent fractions",
			Description:     "Recognize when two fractions name the same amount.",
			SuccessCriteria: "Identifies equivalent fractions and explains why they are equal.",
			Status:          session.StepPending,
		},
		{
			ID:              "fractions-addition",
			Title:           "Adding fractions",
			Description:     "Add fractions with like and unlike denominators.",
			SuccessCriteria: "Adds two fractions with unlike denominators correctly.",
			Status:          session.StepPending,
		},
		{
			ID:              "fractions-word-problems",
			Title:           "Fraction word problems",
			Description:     "Apply fraction arithmetic inside a short word problem.",
			SuccessCriteria: "Solves a two-step fraction word problem without hints.",
			Status:          session.StepPending,
		},
	}}
}
