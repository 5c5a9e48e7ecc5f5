package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"regexp"
	"sort"
	"strings"
)

// TextGenerator is the slice of the Gemini service the matcher needs. A nil
// generator simply means the primary path is disabled.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

// MatchResult is the triple every match call returns, regardless of which
// path produced it.
type MatchResult struct {
	Score           int      `json:"score"`
	Explanation     string   `json:"explanation"`
	MissingKeywords []string `json:"missing_keywords"`
	Degraded        bool     `json:"degraded"`
}

const missingKeywordCap = 15

const atsPromptTemplate = `You are an expert ATS (Applicant Tracking System) analyzer. Analyze this resume against the job description.
Job Description:
%s
Resume:
%s
Provide your analysis as a JSON object with the following structure:
{
  "score": <number between 0-100>,
  "explanation": "<2-3 sentences explaining the match quality and key strengths/weaknesses>",
  "missing_keywords": ["<list of important missing skills/keywords from job description>"]
}
Return ONLY the JSON object, avoid any markdown formatting or surrounding text.`

type MatcherService interface {
	Match(ctx context.Context, resumeText, jobText string) MatchResult
}

type matcherService struct {
	generator TextGenerator
}

func NewMatcherService(generator TextGenerator) MatcherService {
	return &matcherService{generator: generator}
}

// Match scores a resume against a job description. The AI path is tried
// first; any failure there degrades silently to the keyword-overlap scorer.
// Match never returns an error.
func (m *matcherService) Match(ctx context.Context, resumeText, jobText string) MatchResult {
	if m.generator != nil {
		if result, ok := m.aiScore(ctx, resumeText, jobText); ok {
			return result
		}
	}

	result := KeywordScore(resumeText, jobText)
	result.Degraded = true
	result.Explanation += " (AI analysis unavailable; score computed by keyword overlap.)"
	return result
}

func (m *matcherService) aiScore(ctx context.Context, resumeText, jobText string) (MatchResult, bool) {
	prompt := fmt.Sprintf(atsPromptTemplate, jobText, resumeText)

	response, err := m.generator.GenerateText(ctx, prompt, 0.1)
	if err != nil {
		log.Printf("⚠️  ATS scoring call failed: %v\n", err)
		return MatchResult{}, false
	}

	var parsed struct {
		Score           *float64 `json:"score"`
		Explanation     string   `json:"explanation"`
		MissingKeywords []string `json:"missing_keywords"`
	}
	if err := json.Unmarshal([]byte(extractJSON(response)), &parsed); err != nil {
		log.Printf("⚠️  ATS response was not valid JSON: %v\n", err)
		return MatchResult{}, false
	}
	if parsed.Score == nil {
		return MatchResult{}, false
	}

	score := int(math.Round(*parsed.Score))
	if score < 0 || score > 100 {
		return MatchResult{}, false
	}

	explanation := parsed.Explanation
	if explanation == "" {
		explanation = "No explanation provided."
	}

	missing := parsed.MissingKeywords
	if len(missing) > missingKeywordCap {
		missing = missing[:missingKeywordCap]
	}
	if missing == nil {
		missing = []string{}
	}

	return MatchResult{
		Score:           score,
		Explanation:     explanation,
		MissingKeywords: missing,
	}, true
}

// KeywordScore is the deterministic fallback scorer: the share of distinct
// job-description tokens that also appear in the resume, as a 0-100 integer.
func KeywordScore(resumeText, jobText string) MatchResult {
	jobTokens := tokenize(jobText)
	if len(jobTokens) == 0 {
		return MatchResult{
			Score:           0,
			Explanation:     "The job description contained no usable keywords.",
			MissingKeywords: []string{},
		}
	}

	resumeSet := make(map[string]bool)
	for _, tok := range tokenize(resumeText) {
		resumeSet[tok] = true
	}

	matched := 0
	var missing []string
	for _, tok := range jobTokens {
		if resumeSet[tok] {
			matched++
		} else {
			missing = append(missing, tok)
		}
	}
	sort.Strings(missing)
	if len(missing) > missingKeywordCap {
		missing = missing[:missingKeywordCap]
	}
	if missing == nil {
		missing = []string{}
	}

	score := int(math.Round(100 * float64(matched) / float64(len(jobTokens))))

	return MatchResult{
		Score:           score,
		Explanation:     fmt.Sprintf("Matched %d of %d job keywords in the resume.", matched, len(jobTokens)),
		MissingKeywords: missing,
	}
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// tokenize lower-cases, strips non-alphanumerics, and drops tokens shorter
// than three characters ("sql" stays, "go" and glue words do not). The result
// is the set of distinct tokens, in first-seen order.
func tokenize(text string) []string {
	cleaned := nonAlphanumeric.ReplaceAllString(strings.ToLower(text), " ")

	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) < 3 || seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}
	return tokens
}

// extractJSON isolates a JSON object or array from text that may wrap it in
// markdown fences or prose. LLM output is not trusted to be clean JSON.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		if startArr == -1 || startObj < startArr {
			return text[startObj : endObj+1]
		}
	}
	if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
