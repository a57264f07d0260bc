package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yildizm/randy/internal/ai"
)

var catalog = []string{
	"featherless/qwerky-72b:free",
	"mistralai/mistral-7b-instruct:free",
	"meta-llama/llama-3-8b-instruct",
	"openai/gpt-4o",
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"typo", "featherless/qwerky-72b:fre", "featherless/qwerky-72b:free", true},
		{"case", "OpenAI/GPT-4o", "openai/gpt-4o", true},
		{"swapped digits", "openai/gpt-o4", "openai/gpt-4o", true},
		{"unrelated", "completely-different-name", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := suggest(tt.input, catalog)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v (%q)", tt.wantOK, ok, got)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSuggestWithoutCandidates(t *testing.T) {
	if got, ok := suggest("anything", nil); ok {
		t.Errorf("Expected no suggestion, got %q", got)
	}
}

func TestVerifyModel(t *testing.T) {
	list := ai.CatalogFunc(func(context.Context) ([]string, error) {
		return catalog, nil
	})

	if err := verifyModel(context.Background(), list, "openai/gpt-4o"); err != nil {
		t.Errorf("Expected known model to pass, got %v", err)
	}

	err := verifyModel(context.Background(), list, "openai/gpt-4")
	if err == nil {
		t.Fatal("Expected unknown model to fail")
	}
	if !strings.Contains(err.Error(), `did you mean "openai/gpt-4o"`) {
		t.Errorf("Expected suggestion in error, got %v", err)
	}

	err = verifyModel(context.Background(), list, "zzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	if err == nil {
		t.Fatal("Expected unknown model to fail")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("Expected no suggestion, got %v", err)
	}
}

func TestVerifyModelCatalogFailure(t *testing.T) {
	failure := ai.NewProviderError(ai.ErrTypeCatalogUnreachable, "", "openrouter")
	list := ai.CatalogFunc(func(context.Context) ([]string, error) {
		return nil, failure
	})

	err := verifyModel(context.Background(), list, "openai/gpt-4o")
	if !errors.Is(err, failure) {
		t.Errorf("Expected catalog error to be wrapped, got %v", err)
	}
}

func TestFilterModels(t *testing.T) {
	tests := []struct {
		search string
		want   int
	}{
		{"", 4},
		{":free", 2},
		{"LLAMA", 1},
		{"nothing-matches", 0},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got := filterModels(catalog, tt.search)
			if len(got) != tt.want {
				t.Errorf("Expected %d models, got %d (%v)", tt.want, len(got), got)
			}
		})
	}
}
