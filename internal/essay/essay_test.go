package essay

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		keywords  []string
		sentiment Sentiment
	}{
		{
			name:      "art essay",
			text:      "Saya suka menggambar dan desain.",
			keywords:  []string{"menggambar", "desain"},
			sentiment: Positive,
		},
		{
			name:      "negated positive",
			text:      "Saya tidak suka biologi, tapi programming oke.",
			keywords:  []string{"biologi", "programming"},
			sentiment: Negative,
		},
		{
			name:      "repeated keywords are reported once",
			text:      "Coding coding CODING, komputer!",
			keywords:  []string{"coding", "komputer"},
			sentiment: Neutral,
		},
		{
			name:      "no vocabulary",
			text:      "Hari ini cerah.",
			keywords:  []string{},
			sentiment: Neutral,
		},
	}

	analyzer := NewKeywordAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := analyzer.Summarize(tt.text)
			if got == nil {
				t.Fatalf("expected summary")
			}
			if diff := cmp.Diff(tt.keywords, got.Keywords); diff != "" {
				t.Fatalf("unexpected keywords (-want +got):\n%s", diff)
			}
			if got.Sentiment != tt.sentiment {
				t.Fatalf("expected %s, got %s", tt.sentiment, got.Sentiment)
			}
		})
	}
}

func TestAnalyzeBlankEssay(t *testing.T) {
	t.Parallel()

	summary, err := NewKeywordAnalyzer().Analyze(context.Background(), "   \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != nil {
		t.Fatalf("expected nil summary, got %+v", summary)
	}
	if summary.HasKeywords() {
		t.Fatalf("nil summary must not report keywords")
	}
}

func TestParseSentiment(t *testing.T) {
	t.Parallel()

	if ParseSentiment(" Positif ") != Positive || ParseSentiment("NEGATIVE") != Negative || ParseSentiment("mixed") != Neutral {
		t.Fatalf("unexpected sentiment parsing")
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	got := Normalize([]string{" Desain", "desain", "", "SENI "})
	if diff := cmp.Diff([]string{"desain", "seni"}, got); diff != "" {
		t.Fatalf("unexpected keywords (-want +got):\n%s", diff)
	}
}

func TestSummarizePhrases(t *testing.T) {
	t.Parallel()

	got := NewKeywordAnalyzer().Summarize("Saya tertarik hubungan  internasional dan diplomasi.")
	found := false
	for _, kw := range got.Keywords {
		if kw == "hubungan internasional" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected phrase keyword, got %v", got.Keywords)
	}
	if got.Sentiment != Positive {
		t.Fatalf("expected positive sentiment, got %s", got.Sentiment)
	}
}
