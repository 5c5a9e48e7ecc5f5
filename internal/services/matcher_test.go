package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.calls++
	return s.response, s.err
}

func TestKeywordScore(t *testing.T) {
	t.Run("partial overlap rounds half up", func(t *testing.T) {
		result := KeywordScore("I know Java and SQL", "Java Python SQL")

		assert.Equal(t, 67, result.Score)
		assert.Equal(t, []string{"python"}, result.MissingKeywords)
	})

	t.Run("empty job description scores zero", func(t *testing.T) {
		result := KeywordScore("plenty of resume text here", "")

		assert.Equal(t, 0, result.Score)
		assert.Empty(t, result.MissingKeywords)
		assert.NotNil(t, result.MissingKeywords)
	})

	t.Run("job description of glue words only scores zero", func(t *testing.T) {
		result := KeywordScore("anything", "a an of to")

		assert.Equal(t, 0, result.Score)
		assert.Empty(t, result.MissingKeywords)
	})

	t.Run("full overlap scores hundred", func(t *testing.T) {
		result := KeywordScore("golang postgres docker kubernetes", "Golang, Postgres, Docker")

		assert.Equal(t, 100, result.Score)
		assert.Empty(t, result.MissingKeywords)
	})

	t.Run("missing keywords sorted and capped", func(t *testing.T) {
		job := "zeta alpha omega beta gamma delta epsilon theta iota kappa " +
			"lambda sigma tau phi chi psi rho omicron upsilon nueta"
		result := KeywordScore("", job)

		require.Len(t, result.MissingKeywords, 15)
		assert.Equal(t, "alpha", result.MissingKeywords[0])
		assert.Equal(t, 0, result.Score)
	})

	t.Run("duplicate job tokens count once", func(t *testing.T) {
		result := KeywordScore("java", "Java java JAVA python")

		assert.Equal(t, 50, result.Score)
		assert.Equal(t, []string{"python"}, result.MissingKeywords)
	})
}

func TestMatcherPrimaryPath(t *testing.T) {
	ctx := context.Background()

	t.Run("clean JSON response", func(t *testing.T) {
		gen := &stubGenerator{response: `{"score": 82, "explanation": "Strong match.", "missing_keywords": ["kubernetes"]}`}
		m := NewMatcherService(gen)

		result := m.Match(ctx, "resume", "job")

		assert.Equal(t, 82, result.Score)
		assert.Equal(t, "Strong match.", result.Explanation)
		assert.Equal(t, []string{"kubernetes"}, result.MissingKeywords)
		assert.False(t, result.Degraded)
	})

	t.Run("fenced markdown response", func(t *testing.T) {
		gen := &stubGenerator{response: "```json\n{\"score\": 55, \"explanation\": \"ok\", \"missing_keywords\": []}\n```"}
		m := NewMatcherService(gen)

		result := m.Match(ctx, "resume", "job")

		assert.Equal(t, 55, result.Score)
		assert.False(t, result.Degraded)
	})

	t.Run("fractional score rounds", func(t *testing.T) {
		gen := &stubGenerator{response: `{"score": 72.6, "explanation": "ok", "missing_keywords": []}`}
		m := NewMatcherService(gen)

		result := m.Match(ctx, "resume", "job")

		assert.Equal(t, 73, result.Score)
	})

	t.Run("omitted missing_keywords yields an empty list", func(t *testing.T) {
		gen := &stubGenerator{response: `{"score": 90, "explanation": "Great fit."}`}
		m := NewMatcherService(gen)

		result := m.Match(ctx, "resume", "job")

		assert.Equal(t, 90, result.Score)
		assert.NotNil(t, result.MissingKeywords)
		assert.Empty(t, result.MissingKeywords)
	})

	t.Run("out of range score falls back", func(t *testing.T) {
		gen := &stubGenerator{response: `{"score": 140, "explanation": "ok", "missing_keywords": []}`}
		m := NewMatcherService(gen)

		result := m.Match(ctx, "java", "java python")

		assert.True(t, result.Degraded)
		assert.Equal(t, 50, result.Score)
	})

	t.Run("missing score field falls back", func(t *testing.T) {
		gen := &stubGenerator{response: `{"explanation": "ok", "missing_keywords": []}`}
		m := NewMatcherService(gen)

		result := m.Match(ctx, "java", "java")

		assert.True(t, result.Degraded)
		assert.Equal(t, 100, result.Score)
	})
}

func TestMatcherFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("nil generator uses keyword scorer", func(t *testing.T) {
		m := NewMatcherService(nil)

		result := m.Match(ctx, "I know Java and SQL", "Java Python SQL")

		assert.True(t, result.Degraded)
		assert.Equal(t, 67, result.Score)
		assert.Equal(t, []string{"python"}, result.MissingKeywords)
		assert.Contains(t, result.Explanation, "AI analysis unavailable")
	})

	t.Run("generator error uses keyword scorer", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("quota exceeded")}
		m := NewMatcherService(gen)

		result := m.Match(ctx, "golang", "golang rust")

		assert.True(t, result.Degraded)
		assert.Equal(t, 50, result.Score)
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("unparseable response uses keyword scorer", func(t *testing.T) {
		gen := &stubGenerator{response: "I am terribly sorry, I cannot help with that."}
		m := NewMatcherService(gen)

		result := m.Match(ctx, "golang", "golang")

		assert.True(t, result.Degraded)
		assert.Equal(t, 100, result.Score)
	})

	t.Run("fallback is deterministic", func(t *testing.T) {
		m := NewMatcherService(nil)

		first := m.Match(ctx, "react node express", "react angular vue node")
		second := m.Match(ctx, "react node express", "react angular vue node")

		assert.Equal(t, first, second)
	})
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fenced object", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around object", `Here you go: {"a":1} hope that helps`, `{"a":1}`},
		{"bare array", `[1,2]`, `[1,2]`},
		{"array before object text", `[{"a":1}]`, `[{"a":1}]`},
		{"no json at all", "nothing here", "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}
