package ai

import (
	"context"

	"github.com/spigell/major-advisor/internal/essay"
)

// EssayAnalyzer turns a free-text essay into the summary used for the essay bonus.
// A nil summary with a nil error means there was nothing to analyse.
type EssayAnalyzer interface {
	Analyze(ctx context.Context, text string) (*essay.Summary, error)
}

var _ EssayAnalyzer = (*essay.KeywordAnalyzer)(nil)
