package usage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Summary is the historical usage of a project, as supplied by the caller.
type Summary struct {
	// CreatedLabels counts labels used in finalized annotations.
	CreatedLabels LabelCounts `yaml:"created_labels" json:"created_labels"`
	// CreatedLabelsDrafts counts labels used in drafts.
	CreatedLabelsDrafts LabelCounts `yaml:"created_labels_drafts" json:"created_labels_drafts"`
	// CreatedAnnotations counts annotations per tag-tuple.
	CreatedAnnotations TupleCounts `yaml:"created_annotations" json:"created_annotations"`
}

// MergedLabels returns finalized and draft label counts summed together.
func (s *Summary) MergedLabels() LabelCounts {
	return Merge(s.CreatedLabels, s.CreatedLabelsDrafts)
}

// IsEmpty reports whether the summary records no usage at all.
func (s *Summary) IsEmpty() bool {
	return len(s.CreatedLabels) == 0 && len(s.CreatedLabelsDrafts) == 0 && len(s.CreatedAnnotations) == 0
}

// ParseSummary decodes a summary from YAML. JSON input is accepted too, since
// JSON documents are valid YAML.
func ParseSummary(data []byte) (*Summary, error) {
	var s Summary

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse usage summary: %w", err)
	}

	return &s, nil
}

// LoadSummaryFile reads and decodes a summary file.
func LoadSummaryFile(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage summary %s: %w", path, err)
	}

	return ParseSummary(data)
}
