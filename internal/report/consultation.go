// Package report renders and exports consultation results.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spigell/major-advisor/internal/essay"
	"github.com/spigell/major-advisor/internal/profile"
	"github.com/spigell/major-advisor/internal/recommend"
	"github.com/spigell/major-advisor/internal/vector"
)

// Consultation is the exported result of one recommendation run.
type Consultation struct {
	ID              string                     `json:"id"`
	Name            string                     `json:"name,omitempty"`
	Stream          profile.Stream             `json:"stream"`
	StreamLabel     string                     `json:"stream_label"`
	UserVector      map[string]float64         `json:"user_vector"`
	Essay           *essay.Summary             `json:"essay,omitempty"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	DevelopmentPlan DevelopmentPlan            `json:"development_plan"`
	GeneratedAt     time.Time                  `json:"generated_at"`
}

// New assembles a consultation for p. now stamps GeneratedAt.
func New(p *profile.Profile, user vector.Vector, summary *essay.Summary, recs []recommend.Recommendation, now time.Time) *Consultation {
	c := &Consultation{
		ID:              uuid.NewString(),
		UserVector:      namedVector(user),
		Essay:           summary,
		Recommendations: recs,
		DevelopmentPlan: Plan(recs),
		GeneratedAt:     now.UTC(),
	}
	if p != nil {
		c.Name = strings.TrimSpace(p.Name)
		c.Stream = p.Stream
		c.StreamLabel = p.Stream.Label()
	}
	return c
}

func namedVector(v vector.Vector) map[string]float64 {
	out := make(map[string]float64, vector.Size)
	for _, d := range vector.Dimensions {
		out[d.String()] = v[d]
	}
	return out
}

// DumpToFile writes the consultation as indented JSON into dir and returns the path.
func (c *Consultation) DumpToFile(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return c.DumpToTmpFile()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("consultation_%s.json", c.ID))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := c.encode(file); err != nil {
		return "", err
	}
	return path, nil
}

// DumpToTmpFile writes the consultation into a new temporary file.
func (c *Consultation) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "consultation_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := c.encode(file); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func (c *Consultation) encode(file *os.File) error {
	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Details renders one recommendation as ordered label/value pairs for display.
func Details(rec recommend.Recommendation) [][2]string {
	details := [][2]string{
		{"major", rec.Major},
		{"score", fmt.Sprintf("%.1f", rec.Score)},
		{"similarity", fmt.Sprintf("%.3f", rec.Similarity)},
		{"essay bonus", fmt.Sprintf("%.1f", rec.EssayBonus)},
		{"explanation", rec.Explanation},
		{"careers", strings.Join(rec.Careers, ", ")},
		{"develop", strings.Join(rec.DevelopAreas, ", ")},
	}
	if len(rec.Skills) > 0 {
		details = append(details, [2]string{"skills", strings.Join(rec.Skills, ", ")})
	}
	if rec.Prospects != "" {
		details = append(details, [2]string{"prospects", rec.Prospects})
	}
	return details
}
