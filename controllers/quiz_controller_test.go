package controllers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jahnavi-74/e-learning/models"
)

func createQuiz(t *testing.T, teacherToken string, classID uint, correct string, points int) uint {
	t.Helper()

	resp := doRequest(t, "POST", "/api/create_quiz", map[string]interface{}{
		"class_id":       classID,
		"title":          "Sample Quiz",
		"question":       "Pick the right letter",
		"option_a":       "first",
		"option_b":       "second",
		"option_c":       "third",
		"option_d":       "fourth",
		"correct_answer": correct,
		"points":         points,
	}, teacherToken)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return uint(decodeBody(t, resp)["quiz_id"].(float64))
}

func TestCreateQuizRequiresTeacher(t *testing.T) {
	studentToken, _ := registerAndLogin(t, uniqueName("quizstudent"), "student")

	resp := doRequest(t, "POST", "/api/create_quiz", map[string]interface{}{
		"class_id":       1,
		"title":          "Nope",
		"question":       "?",
		"option_a":       "a",
		"option_b":       "b",
		"option_c":       "c",
		"option_d":       "d",
		"correct_answer": "a",
	}, studentToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateQuizRejectsBadAnswer(t *testing.T) {
	teacherToken, _ := registerAndLogin(t, uniqueName("quizteacher"), "teacher")
	classID, _ := createClass(t, teacherToken, "Latin")

	resp := doRequest(t, "POST", "/api/create_quiz", map[string]interface{}{
		"class_id":       classID,
		"title":          "Bad",
		"question":       "?",
		"option_a":       "a",
		"option_b":       "b",
		"option_c":       "c",
		"option_d":       "d",
		"correct_answer": "e",
	}, teacherToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetQuizHidesCorrectAnswer(t *testing.T) {
	teacherToken, _ := registerAndLogin(t, uniqueName("hideteacher"), "teacher")
	studentToken, _ := registerAndLogin(t, uniqueName("hidestudent"), "student")
	classID, _ := createClass(t, teacherToken, "Music")
	quizID := createQuiz(t, teacherToken, classID, "b", 10)

	resp := doRequest(t, "GET", fmt.Sprintf("/api/quiz/%d", quizID), nil, studentToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "first", body["option_a"])
	assert.NotContains(t, body, "correct_answer")
}

func TestSubmitQuizCorrectCaseInsensitive(t *testing.T) {
	teacherToken, _ := registerAndLogin(t, uniqueName("subteacher"), "teacher")
	studentToken, _ := registerAndLogin(t, uniqueName("substudent"), "student")
	classID, _ := createClass(t, teacherToken, "Spanish")
	quizID := createQuiz(t, teacherToken, classID, "c", 10)

	resp := doRequest(t, "POST", "/api/submit_quiz", map[string]interface{}{
		"quiz_id": quizID,
		"answer":  "C",
	}, studentToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["is_correct"])
	assert.Equal(t, float64(10), body["points_earned"])
	assert.Equal(t, "c", body["correct_answer"])
	assert.Equal(t, 10, userPoints(t, studentToken))

	// The response keeps the answer exactly as the student typed it.
	var stored models.QuizResponse
	require.NoError(t, db.Where("quiz_id = ?", quizID).First(&stored).Error)
	assert.Equal(t, "C", stored.Answer)
}

func TestSubmitQuizWrongAnswerEarnsNothing(t *testing.T) {
	teacherToken, _ := registerAndLogin(t, uniqueName("wrteacher"), "teacher")
	studentToken, _ := registerAndLogin(t, uniqueName("wrstudent"), "student")
	classID, _ := createClass(t, teacherToken, "French")
	quizID := createQuiz(t, teacherToken, classID, "a", 10)

	resp := doRequest(t, "POST", "/api/submit_quiz", map[string]interface{}{
		"quiz_id": quizID,
		"answer":  "d",
	}, studentToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["is_correct"])
	assert.Equal(t, float64(0), body["points_earned"])
	assert.Equal(t, 0, userPoints(t, studentToken))
}

func TestSubmitQuizMissingQuiz(t *testing.T) {
	studentToken, _ := registerAndLogin(t, uniqueName("missstudent"), "student")

	resp := doRequest(t, "POST", "/api/submit_quiz", map[string]interface{}{
		"quiz_id": 999999,
		"answer":  "a",
	}, studentToken)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// A student going from 0 to 10 points crosses the First Steps threshold and
// the badge shows up right after the submission.
func TestSubmitQuizGrantsFirstStepsBadge(t *testing.T) {
	teacherToken, _ := registerAndLogin(t, uniqueName("badgeteacher"), "teacher")
	studentToken, _ := registerAndLogin(t, uniqueName("badgestudent"), "student")
	classID, _ := createClass(t, teacherToken, "Astronomy")
	quizID := createQuiz(t, teacherToken, classID, "a", 10)

	resp := doRequest(t, "GET", "/api/badges", nil, studentToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeList(t, resp))

	resp = doRequest(t, "POST", "/api/submit_quiz", map[string]interface{}{
		"quiz_id": quizID,
		"answer":  "a",
	}, studentToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, "GET", "/api/badges", nil, studentToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	badges := decodeList(t, resp)
	require.Len(t, badges, 1)
	assert.Equal(t, "First Steps", badges[0]["name"])
}
