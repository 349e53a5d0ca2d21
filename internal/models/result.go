package models

import "time"

// AnswerRecord snapshots one graded answer. QuestionText is a copy taken at
// scoring time so a result survives later edits or deletion of its quiz.
type AnswerRecord struct {
	QuestionText        string `bson:"question_text" json:"questionText"`
	SelectedOptionIndex int    `bson:"selected_option_index" json:"selectedOptionIndex"`
	IsCorrect           bool   `bson:"is_correct" json:"isCorrect"`
}

// Result is the immutable record of one scored submission. It is written
// exactly once and only ever read or bulk-deleted along with its quiz.
type Result struct {
	ID             string         `bson:"_id,omitempty" json:"id"`
	UserID         string         `bson:"user_id" json:"userId"`
	Username       string         `bson:"username" json:"username"`
	QuizID         string         `bson:"quiz_id" json:"quizId"`
	Score          float64        `bson:"score" json:"score"`
	TotalQuestions int            `bson:"total_questions" json:"totalQuestions"`
	CorrectAnswers int            `bson:"correct_answers" json:"correctAnswers"`
	Answers        []AnswerRecord `bson:"answers" json:"answers"`
	AttemptedAt    time.Time      `bson:"attempted_at" json:"attemptedAt"`
}
