package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/spigell/major-advisor/internal/ai"
	"github.com/spigell/major-advisor/internal/essay"
	"github.com/spigell/major-advisor/internal/logger"
	"github.com/spigell/major-advisor/internal/taxonomy"
	"github.com/spigell/major-advisor/internal/utils"
	"go.uber.org/zap"
)

//go:embed prompt.md
var systemPrompt string

const defaultMaxLogLength = 200

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

// Analyzer asks Gemini to extract essay keywords and sentiment.
type Analyzer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.EssayAnalyzer = (*Analyzer)(nil)

func NewAnalyzer(generator contentGenerator, log *zap.Logger, maxLogLength int) *Analyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &Analyzer{
		generator: generator,
		logger:    logger.WithCommonFields(log, "gemini", generator.Model()),
		maxLogLen: maxLogLength,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, text string) (*essay.Summary, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	message := buildMessage(text)

	a.logger.Debug("gemini essay analysis request",
		zap.Int("message_length", utf8.RuneCountInString(message)),
		zap.String("essay_preview", utils.TruncateForLog(text, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, systemPrompt, message)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini essay analysis response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return parseResponse(raw)
}

func buildMessage(text string) string {
	vocab := make([]string, 0)
	for kw := range taxonomy.Vocabulary() {
		vocab = append(vocab, kw)
	}
	sort.Strings(vocab)

	var b strings.Builder
	b.WriteString("Essay:\n")
	b.WriteString(text)
	b.WriteString("\n\nVocabulary:\n")
	b.WriteString(strings.Join(vocab, ", "))
	return b.String()
}

func parseResponse(raw string) (*essay.Summary, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(extractJSON(raw)), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	return &essay.Summary{
		Keywords:  essay.Normalize(coerceStrings(data["keywords"])),
		Sentiment: essay.ParseSentiment(coerceString(data["sentiment"])),
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceStrings(v any) []string {
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := coerceString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return strings.Split(val, ",")
	default:
		return nil
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}
