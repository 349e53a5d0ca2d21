package scoring

import (
	"math"

	"quizhub/internal/models"
)

// Unanswered is the recorded option index for a question the learner never
// answered.
const Unanswered = -1

// SubmittedAnswer is one entry of a submission payload. SelectedOptions is
// a list for forward compatibility with multi-select; only the first
// element is scored.
type SubmittedAnswer struct {
	QuestionID      string `json:"questionId"`
	SelectedOptions []int  `json:"selectedOptions"`
}

// ScoredSubmission is the verdict for one attempt. Answers follows the
// quiz's question order, one record per question.
type ScoredSubmission struct {
	Score          float64
	TotalQuestions int
	CorrectAnswers int
	Answers        []models.AnswerRecord
}

// Score grades submitted against the quiz's questions. It is a pure
// computation: the caller fetches the quiz snapshot and persists the
// outcome. Submissions may be incomplete, out of order, or carry duplicate
// entries for a question; the first entry wins. The quiz must have at
// least one question, which Quiz.Validate guarantees upstream.
func Score(quiz *models.Quiz, submitted []SubmittedAnswer) ScoredSubmission {
	byQuestion := make(map[string]SubmittedAnswer, len(submitted))
	for _, ans := range submitted {
		if _, seen := byQuestion[ans.QuestionID]; !seen {
			byQuestion[ans.QuestionID] = ans
		}
	}

	total := len(quiz.Questions)
	correct := 0
	answers := make([]models.AnswerRecord, 0, total)

	for _, question := range quiz.Questions {
		selected := Unanswered
		if sub, ok := byQuestion[question.ID]; ok && len(sub.SelectedOptions) > 0 {
			selected = sub.SelectedOptions[0]
		}

		isCorrect := selected != Unanswered && selected == question.CorrectOptionIndex()
		if isCorrect {
			correct++
		}

		answers = append(answers, models.AnswerRecord{
			QuestionText:        question.Text,
			SelectedOptionIndex: selected,
			IsCorrect:           isCorrect,
		})
	}

	return ScoredSubmission{
		Score:          round2(100 * float64(correct) / float64(total)),
		TotalQuestions: total,
		CorrectAnswers: correct,
		Answers:        answers,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
