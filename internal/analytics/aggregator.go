package analytics

import (
	"math"
	"sort"
	"time"

	"quizhub/internal/models"
)

// topIncorrectLimit caps the missed-question ranking.
const topIncorrectLimit = 5

type StudentResult struct {
	Username    string    `json:"username"`
	Score       float64   `json:"score"`
	AttemptedAt time.Time `json:"attemptedAt"`
}

type IncorrectQuestion struct {
	QuestionText   string `json:"questionText"`
	IncorrectCount int    `json:"incorrectCount"`
}

type QuizAnalytics struct {
	TotalAttempts         int                 `json:"totalAttempts"`
	AverageScore          float64             `json:"averageScore"`
	StudentResults        []StudentResult     `json:"studentResults"`
	TopIncorrectQuestions []IncorrectQuestion `json:"topIncorrectQuestions"`
}

// Aggregate computes attempt statistics over every result of one quiz. An
// empty result set is the normal state of a fresh quiz and yields the zero
// state instead of an error. Student rows keep the order results were
// fetched in; the caller decides that order.
//
// Missed questions are grouped by question text, not id: results keep only
// a text snapshot of each question. Two distinct questions with identical
// wording therefore share a bucket.
func Aggregate(results []models.Result) QuizAnalytics {
	out := QuizAnalytics{
		StudentResults:        []StudentResult{},
		TopIncorrectQuestions: []IncorrectQuestion{},
	}
	if len(results) == 0 {
		return out
	}

	var totalScore float64
	counts := make(map[string]int)
	var firstSeen []string

	for _, result := range results {
		totalScore += result.Score
		out.StudentResults = append(out.StudentResults, StudentResult{
			Username:    result.Username,
			Score:       result.Score,
			AttemptedAt: result.AttemptedAt,
		})
		for _, answer := range result.Answers {
			if answer.IsCorrect {
				continue
			}
			if _, seen := counts[answer.QuestionText]; !seen {
				firstSeen = append(firstSeen, answer.QuestionText)
			}
			counts[answer.QuestionText]++
		}
	}

	out.TotalAttempts = len(results)
	out.AverageScore = round2(totalScore / float64(len(results)))

	ranked := make([]IncorrectQuestion, 0, len(firstSeen))
	for _, text := range firstSeen {
		ranked = append(ranked, IncorrectQuestion{QuestionText: text, IncorrectCount: counts[text]})
	}
	// Stable sort keeps first-encountered order among equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].IncorrectCount > ranked[j].IncorrectCount
	})
	if len(ranked) > topIncorrectLimit {
		ranked = ranked[:topIncorrectLimit]
	}
	out.TopIncorrectQuestions = ranked

	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
