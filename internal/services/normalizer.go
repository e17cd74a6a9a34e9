package services

import (
	"strings"

	"github.com/adaskevich/tasktracker/internal/utils"
)

// Normalizer validates user-supplied status and priority labels and
// canonicalizes them. The valid sets are passed in explicitly so tests can
// substitute their own.
type Normalizer struct {
	statuses       []string          // canonical casing, seed order
	statusByLower  map[string]string // lower label -> canonical name
	priorityLabels []string          // canonical labels, ordered by level
	levelByLower   map[string]int    // lower label -> importance level
}

// NewNormalizer builds a Normalizer from the canonical status list and the
// importance-level to label mapping (level 1 = highest).
func NewNormalizer(statuses []string, priorityLabels map[int]string) *Normalizer {
	n := &Normalizer{
		statuses:      statuses,
		statusByLower: make(map[string]string, len(statuses)),
		levelByLower:  make(map[string]int, len(priorityLabels)),
	}
	for _, s := range statuses {
		n.statusByLower[strings.ToLower(s)] = s
	}

	maxLevel := 0
	for level := range priorityLabels {
		if level > maxLevel {
			maxLevel = level
		}
	}
	for level := 1; level <= maxLevel; level++ {
		label, ok := priorityLabels[level]
		if !ok {
			continue
		}
		n.priorityLabels = append(n.priorityLabels, label)
		n.levelByLower[strings.ToLower(label)] = level
	}
	return n
}

// NormalizeStatus matches a status label case-insensitively and returns the
// canonical name.
func (n *Normalizer) NormalizeStatus(label string) (string, error) {
	canonical, ok := n.statusByLower[strings.ToLower(label)]
	if !ok {
		return "", newValidationError(
			"Task status must be one of: %s", utils.QuoteJoin(n.statuses))
	}
	return canonical, nil
}

// NormalizePriority matches a priority label case-insensitively and returns
// its importance level.
func (n *Normalizer) NormalizePriority(label string) (int, error) {
	level, ok := n.levelByLower[strings.ToLower(label)]
	if !ok {
		return 0, newValidationError(
			"Task priority must be one of: %s", utils.QuoteJoin(n.priorityLabels))
	}
	return level, nil
}
