package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
)

type InterviewQuestion struct {
	Type     string `json:"type"`
	Question string `json:"question"`
	Hint     string `json:"hint"`
}

const interviewPromptTemplate = `Generate 5 interview questions for a candidate applying to:
Role: %s
Company: %s
Description: %s
Include a mix of:
- 2 Technical questions specific to the role
- 2 Behavioral/HR questions
- 1 Problem-solving/Situational question
Return a JSON array where each object has:
{
  "type": "Technical" | "Behavioral" | "Situational",
  "question": "The question text",
  "hint": "A short hint or key topics to mention in the answer"
}
Return ONLY the JSON.`

// InterviewService generates practice questions for a drive. Like the
// matcher, it never surfaces an upstream failure: a canned question set is
// returned when the generator is missing or misbehaves.
type InterviewService interface {
	GenerateQuestions(ctx context.Context, drive *models.Drive) []InterviewQuestion
}

type interviewService struct {
	generator TextGenerator
}

func NewInterviewService(generator TextGenerator) InterviewService {
	return &interviewService{generator: generator}
}

// GenerateQuestions implements InterviewService.
func (s *interviewService) GenerateQuestions(ctx context.Context, drive *models.Drive) []InterviewQuestion {
	if s.generator == nil {
		return defaultQuestions()
	}

	prompt := fmt.Sprintf(interviewPromptTemplate, drive.Role, drive.Name, drive.Description)
	response, err := s.generator.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		log.Printf("⚠️  Interview question generation failed: %v\n", err)
		return defaultQuestions()
	}

	questions := parseQuestions(response)
	if len(questions) == 0 {
		return defaultQuestions()
	}
	return questions
}

// parseQuestions accepts either a bare JSON array or an object wrapping one
// under a "questions" key. Anything else yields nil.
func parseQuestions(response string) []InterviewQuestion {
	raw := extractJSON(response)

	var questions []InterviewQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err == nil {
		return questions
	}

	var wrapped struct {
		Questions []InterviewQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil {
		return wrapped.Questions
	}

	log.Printf("⚠️  Interview response was not parseable JSON\n")
	return nil
}

func defaultQuestions() []InterviewQuestion {
	return []InterviewQuestion{
		{Type: "Behavioral", Question: "Tell me about yourself and your projects.", Hint: "Focus on recent work."},
		{Type: "Technical", Question: "Explain a challenging bug you fixed recently.", Hint: "STAR method."},
		{Type: "Situational", Question: "How do you handle tight deadlines?", Hint: "Prioritization."},
	}
}
