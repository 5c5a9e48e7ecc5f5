package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
)

func TestGenerateQuestions(t *testing.T) {
	ctx := context.Background()
	drive := &models.Drive{Name: "Microsoft", Role: "Software Engineer", Description: "Azure core services."}

	t.Run("parses a bare array response", func(t *testing.T) {
		gen := &stubGenerator{response: `[
			{"type": "Technical", "question": "Explain goroutine scheduling.", "hint": "GOMAXPROCS, M:N"},
			{"type": "Behavioral", "question": "Describe a conflict you resolved.", "hint": "STAR"}
		]`}
		s := NewInterviewService(gen)

		questions := s.GenerateQuestions(ctx, drive)

		require.Len(t, questions, 2)
		assert.Equal(t, "Technical", questions[0].Type)
		assert.Equal(t, "Explain goroutine scheduling.", questions[0].Question)
	})

	t.Run("parses a wrapped object response", func(t *testing.T) {
		gen := &stubGenerator{response: `{"questions": [{"type": "Situational", "question": "Production is down. What first?", "hint": "Triage"}]}`}
		s := NewInterviewService(gen)

		questions := s.GenerateQuestions(ctx, drive)

		require.Len(t, questions, 1)
		assert.Equal(t, "Situational", questions[0].Type)
	})

	t.Run("nil generator serves the canned set", func(t *testing.T) {
		s := NewInterviewService(nil)

		questions := s.GenerateQuestions(ctx, drive)

		require.Len(t, questions, 3)
		assert.Equal(t, "Behavioral", questions[0].Type)
	})

	t.Run("generator error serves the canned set", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("deadline exceeded")}
		s := NewInterviewService(gen)

		questions := s.GenerateQuestions(ctx, drive)

		assert.Len(t, questions, 3)
	})

	t.Run("unparseable response serves the canned set", func(t *testing.T) {
		gen := &stubGenerator{response: "Sure! Here are some great questions for you."}
		s := NewInterviewService(gen)

		questions := s.GenerateQuestions(ctx, drive)

		assert.Len(t, questions, 3)
	})
}
