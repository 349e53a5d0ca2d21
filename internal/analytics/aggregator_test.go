package analytics

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"quizhub/internal/models"
)

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)

	if got.TotalAttempts != 0 {
		t.Errorf("expected 0 attempts, got %d", got.TotalAttempts)
	}
	if got.AverageScore != 0 {
		t.Errorf("expected average 0, got %v", got.AverageScore)
	}
	if got.StudentResults == nil || len(got.StudentResults) != 0 {
		t.Errorf("expected empty student results, got %v", got.StudentResults)
	}
	if got.TopIncorrectQuestions == nil || len(got.TopIncorrectQuestions) != 0 {
		t.Errorf("expected empty incorrect ranking, got %v", got.TopIncorrectQuestions)
	}
}

// Ten attempts over a four-question quiz: learners 1-3 miss question two,
// learners 4-8 miss question four, learners 9-10 answer everything.
func classroomResults() []models.Result {
	questions := []string{"Q1 text", "Q2 text", "Q3 text", "Q4 text"}
	var results []models.Result

	for i := 1; i <= 10; i++ {
		missed := ""
		switch {
		case i <= 3:
			missed = "Q2 text"
		case i <= 8:
			missed = "Q4 text"
		}

		var answers []models.AnswerRecord
		correct := 0
		for _, text := range questions {
			ok := text != missed
			if ok {
				correct++
			}
			answers = append(answers, models.AnswerRecord{
				QuestionText:        text,
				SelectedOptionIndex: 0,
				IsCorrect:           ok,
			})
		}

		results = append(results, models.Result{
			Username:       fmt.Sprintf("student%d", i),
			Score:          float64(correct) / 4 * 100,
			TotalQuestions: 4,
			CorrectAnswers: correct,
			Answers:        answers,
			AttemptedAt:    time.Date(2025, 3, 1, 9, 0, i, 0, time.UTC),
		})
	}
	return results
}

func TestAggregateClassroom(t *testing.T) {
	got := Aggregate(classroomResults())

	if got.TotalAttempts != 10 {
		t.Errorf("expected 10 attempts, got %d", got.TotalAttempts)
	}
	// 8 results at 75.00, 2 at 100.00.
	if got.AverageScore != 80.00 {
		t.Errorf("expected average 80.00, got %v", got.AverageScore)
	}
	if len(got.StudentResults) != 10 {
		t.Fatalf("expected one row per result, got %d", len(got.StudentResults))
	}
	if got.StudentResults[0].Username != "student1" {
		t.Errorf("expected fetch order preserved, got %q first", got.StudentResults[0].Username)
	}

	wantRanking := []IncorrectQuestion{
		{QuestionText: "Q4 text", IncorrectCount: 5},
		{QuestionText: "Q2 text", IncorrectCount: 3},
	}
	if !reflect.DeepEqual(got.TopIncorrectQuestions, wantRanking) {
		t.Errorf("unexpected ranking: got %v, want %v", got.TopIncorrectQuestions, wantRanking)
	}
}

func TestAggregateTopFiveTruncation(t *testing.T) {
	var answers []models.AnswerRecord
	// Seven distinct missed questions, counts 7..1, plus one always-correct
	// question that must never appear.
	for q := 1; q <= 7; q++ {
		for n := 0; n < 8-q; n++ {
			answers = append(answers, models.AnswerRecord{
				QuestionText: fmt.Sprintf("missed %d", q),
			})
		}
	}
	answers = append(answers, models.AnswerRecord{QuestionText: "aced", IsCorrect: true})

	got := Aggregate([]models.Result{{Username: "s", Score: 10, Answers: answers}})

	if len(got.TopIncorrectQuestions) != 5 {
		t.Fatalf("expected ranking truncated to 5, got %d", len(got.TopIncorrectQuestions))
	}
	for i := 1; i < len(got.TopIncorrectQuestions); i++ {
		if got.TopIncorrectQuestions[i].IncorrectCount > got.TopIncorrectQuestions[i-1].IncorrectCount {
			t.Errorf("ranking not non-increasing at %d: %v", i, got.TopIncorrectQuestions)
		}
	}
	for _, entry := range got.TopIncorrectQuestions {
		if entry.QuestionText == "aced" {
			t.Errorf("question with zero incorrect answers made the ranking")
		}
		if entry.IncorrectCount == 0 {
			t.Errorf("zero-count entry in ranking: %v", entry)
		}
	}
}

func TestAggregateStableTies(t *testing.T) {
	results := []models.Result{
		{Username: "a", Score: 0, Answers: []models.AnswerRecord{
			{QuestionText: "first seen"},
			{QuestionText: "second seen"},
		}},
		{Username: "b", Score: 0, Answers: []models.AnswerRecord{
			{QuestionText: "first seen"},
			{QuestionText: "second seen"},
		}},
	}

	got := Aggregate(results)
	if got.TopIncorrectQuestions[0].QuestionText != "first seen" {
		t.Errorf("tie broken against first-encountered order: %v", got.TopIncorrectQuestions)
	}
}

func TestAggregateAverageRounding(t *testing.T) {
	results := []models.Result{
		{Username: "a", Score: 33.33},
		{Username: "b", Score: 33.33},
		{Username: "c", Score: 33.34},
	}
	got := Aggregate(results)
	if got.AverageScore != 33.33 {
		t.Errorf("expected average 33.33, got %v", got.AverageScore)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	results := classroomResults()
	first := Aggregate(results)
	second := Aggregate(results)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation not idempotent over an unchanged result set")
	}
}
