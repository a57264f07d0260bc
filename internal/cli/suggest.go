package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/yildizm/randy/internal/ai"
)

// suggest returns the candidate closest to name by edit distance, ignoring case.
// Nothing is suggested when even the closest candidate shares too little with name.
func suggest(name string, candidates []string) (string, bool) {
	if name == "" || len(candidates) == 0 {
		return "", false
	}

	target := strings.ToLower(name)
	best, bestDistance := "", -1
	for _, candidate := range candidates {
		d := levenshtein.ComputeDistance(target, strings.ToLower(candidate))
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = candidate, d
		}
	}

	limit := max(len([]rune(name))/2, 3)
	if bestDistance > limit {
		return "", false
	}
	return best, true
}

// verifyModel checks that model is offered by the catalog
func verifyModel(ctx context.Context, catalog ai.Catalog, model string) error {
	models, err := catalog.Models(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify model %q: %w", model, err)
	}

	if slices.Contains(models, model) {
		return nil
	}
	if closest, ok := suggest(model, models); ok {
		return fmt.Errorf("unknown model %q, did you mean %q? (run 'randy models' to list them)", model, closest)
	}
	return fmt.Errorf("unknown model %q (run 'randy models' to list them)", model)
}

// filterModels keeps the models whose name contains search, ignoring case
func filterModels(models []string, search string) []string {
	if search == "" {
		return models
	}

	needle := strings.ToLower(search)
	filtered := make([]string, 0, len(models))
	for _, m := range models {
		if strings.Contains(strings.ToLower(m), needle) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
