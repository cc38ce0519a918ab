package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/major-advisor/internal/ai"
	"github.com/spigell/major-advisor/internal/ai/gemini"
	"github.com/spigell/major-advisor/internal/catalog"
	"github.com/spigell/major-advisor/internal/essay"
	"github.com/spigell/major-advisor/internal/filtering"
	"github.com/spigell/major-advisor/internal/logger"
	"github.com/spigell/major-advisor/internal/profile"
	"github.com/spigell/major-advisor/internal/recommend"
	"github.com/spigell/major-advisor/internal/report"
	"github.com/spigell/major-advisor/internal/secrets"
)

const (
	PromptDetails        = "Show details"
	PromptExport         = "Export consultation to file"
	PromptNotInteresting = "Mark a major as not interesting"
	PromptExit           = "Exit"
	PromptBack           = "back"

	notInterestingReason = "marked as not interesting"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptDetails, PromptExport, PromptNotInteresting, PromptExit},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend majors for a student profile",
	Run: func(cmd *cobra.Command, _ []string) {
		runRecommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("profile", "p", "", "student profile file (yaml or json)")
	recommendCmd.Flags().IntP("top", "n", 0, "number of recommendations to show")
	recommendCmd.Flags().Bool("no-prompt", false, "print recommendations and exit without the interactive menu")
	recommendCmd.Flags().StringP("export", "o", "", "export the consultation as JSON into this directory")
	recommendCmd.Flags().StringP("exclude-file", "e", "", "file with majors marked as not interesting. Default is unset.")
	recommendCmd.Flags().StringSlice("no-filter", nil, "disable candidate filters by name (stream, excluded_majors, exclude_file)")

	viper.BindPFlag("profile-file", recommendCmd.Flags().Lookup("profile"))
	viper.BindPFlag("top", recommendCmd.Flags().Lookup("top"))
	viper.BindPFlag("export-dir", recommendCmd.Flags().Lookup("export"))
	viper.BindPFlag("exclude-file", recommendCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("disabled-filters", recommendCmd.Flags().Lookup("no-filter"))
}

// session holds the state the interactive menu works on.
type session struct {
	config     *Config
	logger     *zap.Logger
	profile    *profile.Profile
	summary    *essay.Summary
	matcher    *recommend.Matcher
	candidates []catalog.MajorProfile
	recs       []recommend.Recommendation
}

func runRecommend(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config := setup()

	logger.Info("starting the major-advisor", zap.String("version", resolveVersion()))

	p, err := loadProfile(config.ProfileFile, logger)
	if err != nil {
		logger.Fatal("loading the profile", zap.Error(err),
			zap.String("hint", "pass --profile or set MAJOR_ADVISOR_PROFILE / profile-file"),
		)
	}

	if err := p.Validate(); err != nil {
		logger.Fatal("profile is invalid", zap.Error(err),
			zap.String("hint", fmt.Sprintf("scores must be within 0-%d and ratings within %d-%d", profile.MaxScore, profile.MinRating, profile.MaxRating)),
		)
	}

	cat, err := loadCatalog(ctx, config, logger)
	if err != nil {
		logger.Fatal("loading the catalog", zap.Error(err))
	}

	candidates, err := filterCandidates(ctx, config, p, cat, logger)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	s := &session{
		config:     config,
		logger:     logger,
		profile:    p,
		summary:    analyzeEssay(ctx, config.AI, p.Essay, logger),
		matcher:    recommend.NewMatcher(logger, config.Top),
		candidates: candidates,
	}

	if err := s.rank(); err != nil {
		if errors.Is(err, recommend.ErrEmptyCatalog) {
			logger.Fatal("nothing to recommend", zap.Error(err),
				zap.String("hint", "check catalog.exclude, catalog.stream-only and the exclude file"),
			)
		}
		logger.Fatal("ranking majors", zap.Error(err))
	}

	if dir := strings.TrimSpace(config.ExportDir); dir != "" {
		if err := s.export(dir); err != nil {
			logger.Fatal("exporting consultation", zap.Error(err))
		}
	}

	if noPrompt, _ := cmd.Flags().GetBool("no-prompt"); noPrompt {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := s.handleAction(action); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func loadProfile(path string, log *zap.Logger) (*profile.Profile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("profile file is not configured")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading profile %q: %w", path, err)
	}

	p, skipped, err := profile.Decode(v.AllSettings())
	if err != nil {
		return nil, err
	}

	if len(skipped) > 0 {
		log.Warn("ignoring scores outside the student stream",
			zap.String(logger.FieldStream, p.Stream.Label()),
			zap.Strings("subjects", skipped),
		)
	}

	return p, nil
}

func filterCandidates(ctx context.Context, config *Config, p *profile.Profile, cat *catalog.Catalog, log *zap.Logger) ([]catalog.MajorProfile, error) {
	steps := filtering.Default()
	for _, name := range config.DisabledFilters {
		filtering.DisableByName(steps, strings.TrimSpace(name), "disabled by configuration")
	}

	cfg := &filtering.Config{
		StreamOnly:  config.Catalog.StreamOnly,
		Exclude:     config.Catalog.Exclude,
		ExcludeFile: config.ExcludeFile,
	}

	candidates, err := filtering.Run(ctx, cfg, filtering.Deps{Logger: log, Stream: p.Stream}, steps, cat.Snapshot())
	if err != nil {
		return nil, err
	}

	for _, status := range filtering.Describe(steps) {
		log.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	return candidates, nil
}

// analyzeEssay prefers the AI analyzer when enabled and falls back to keyword
// matching when it is unavailable or fails.
func analyzeEssay(ctx context.Context, cfg *AIConfig, text string, log *zap.Logger) *essay.Summary {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	fallback := essay.NewKeywordAnalyzer()

	var analyzer ai.EssayAnalyzer = fallback
	if cfg.Enabled {
		aiAnalyzer, err := newAIAnalyzer(ctx, cfg, log)
		if err != nil {
			log.Warn("skipping AI essay analysis", zap.Error(err))
		} else {
			analyzer = aiAnalyzer
		}
	}

	summary, err := analyzer.Analyze(ctx, text)
	if err != nil {
		log.Warn("essay analysis failed, using keyword analyzer", zap.Error(err))
		summary = fallback.Summarize(text)
	}

	if summary != nil {
		log.Info("essay analysed",
			zap.Strings("keywords", summary.Keywords),
			zap.String("sentiment", string(summary.Sentiment)),
		)
	}
	return summary
}

func newAIAnalyzer(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.EssayAnalyzer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		Env:  "GEMINI_API_KEY",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithCommonFields(log, "gemini", cfg.Gemini.Model).With(
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAnalyzer(generator, log, cfg.Gemini.MaxLogLength), nil
}

func (s *session) rank() error {
	user := profile.Vectorize(s.profile)
	s.logger.Info("user vector computed",
		logger.Vector(logger.FieldVector, user),
		zap.String(logger.FieldStream, s.profile.Stream.Label()),
		zap.Int("candidates", len(s.candidates)),
		zap.Int("top", s.matcher.TopK()),
	)

	recs, err := s.matcher.Recommend(user, s.candidates, s.summary)
	if err != nil {
		return err
	}
	s.recs = recs

	for i, rec := range recs {
		s.logger.Info(fmt.Sprintf("recommendation #%d", i+1),
			zap.String(logger.FieldMajor, rec.Major),
			zap.Float64("score", rec.Score),
			zap.Float64("essay_bonus", rec.EssayBonus),
			zap.String("explanation", rec.Explanation),
			zap.Strings("careers", rec.Careers),
		)
	}
	return nil
}

func (s *session) consultation() *report.Consultation {
	return report.New(s.profile, profile.Vectorize(s.profile), s.summary, s.recs, time.Now())
}

func (s *session) export(dir string) error {
	filename, err := s.consultation().DumpToFile(dir)
	if err != nil {
		return fmt.Errorf("dump consultation to file: %w", err)
	}
	s.logger.Info("consultation exported", zap.String("filename", filename))
	return nil
}

func (s *session) handleAction(action string) error {
	switch action {
	case PromptDetails:
		for _, rec := range s.recs {
			fmt.Println(strings.Repeat("-", 40))
			for _, d := range report.Details(rec) {
				fmt.Printf("%-12s %s\n", d[0]+":", d[1])
			}
		}
		return nil
	case PromptExport:
		return s.export(s.config.ExportDir)
	case PromptNotInteresting:
		return s.markNotInteresting()
	case PromptExit:
		s.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func (s *session) markNotInteresting() error {
	excludeFile := strings.TrimSpace(s.config.ExcludeFile)
	if excludeFile == "" {
		s.logger.Warn("exclude file is not configured", zap.String("hint", "set exclude-file or pass --exclude-file"))
		return nil
	}

	items := make([]string, 0, len(s.recs)+1)
	for _, rec := range s.recs {
		items = append(items, rec.Major)
	}

	majorPrompt := promptui.Select{
		Label: "Choose a major and press ENTER",
		Items: append(items, PromptBack),
	}

	_, selected, err := majorPrompt.Run()
	if err != nil {
		return err
	}
	if selected == PromptBack {
		return nil
	}

	if err := report.AppendToFile(excludeFile, notInterestingReason, selected); err != nil {
		return err
	}
	s.logger.Info("appended to exclude file", zap.String("filename", excludeFile), zap.String(logger.FieldMajor, selected))

	kept := make([]catalog.MajorProfile, 0, len(s.candidates))
	for _, m := range s.candidates {
		if m.Name != selected {
			kept = append(kept, m)
		}
	}
	s.candidates = kept

	if err := s.rank(); err != nil {
		if errors.Is(err, recommend.ErrEmptyCatalog) {
			s.logger.Info("exiting", zap.String("reason", "no majors left"))
			return errExit
		}
		return err
	}
	return nil
}
