package gamify

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Jahnavi-74/e-learning/models"
)

// Seed ensures the badge catalog exists and, when demo is on, populates an
// empty database with a sample teacher, students, class and activities.
// Safe to run on every startup.
func Seed(db *gorm.DB, demo bool) error {
	if err := seedBadges(db); err != nil {
		return err
	}
	if demo {
		return seedDemoData(db)
	}
	return nil
}

func seedBadges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Badge{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	badges := []models.Badge{
		{Name: "First Steps", Description: "Earn your first 10 points", Icon: "🌱", PointsRequired: 10},
		{Name: "Rising Star", Description: "Earn 50 points", Icon: "⭐", PointsRequired: 50},
		{Name: "Quiz Master", Description: "Earn 100 points", Icon: "🎯", PointsRequired: 100},
		{Name: "Champion", Description: "Earn 250 points", Icon: "🏆", PointsRequired: 250},
		{Name: "Legend", Description: "Earn 500 points", Icon: "👑", PointsRequired: 500},
	}
	return db.Create(&badges).Error
}

func seedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		teacher, err := seedUser(tx, "teacher1", "teacher1@example.com", "teacher123", models.RoleTeacher)
		if err != nil {
			return err
		}
		student1, err := seedUser(tx, "student1", "student1@example.com", "student123", models.RoleStudent)
		if err != nil {
			return err
		}
		student2, err := seedUser(tx, "student2", "student2@example.com", "student123", models.RoleStudent)
		if err != nil {
			return err
		}

		class := models.OnlineClass{
			Title:       "Introduction to Web Development",
			Description: "Learn the fundamentals of HTML, CSS, and JavaScript",
			TeacherID:   teacher.ID,
			ClassCode:   "WEB101",
		}
		if err := tx.Create(&class).Error; err != nil {
			return err
		}

		enrollments := []models.ClassEnrollment{
			{UserID: student1.ID, ClassID: class.ID},
			{UserID: student2.ID, ClassID: class.ID},
		}
		if err := tx.Create(&enrollments).Error; err != nil {
			return err
		}

		quizzes := []models.Quiz{
			{ClassID: class.ID, Title: "HTML Basics", Question: "What does HTML stand for?",
				OptionA: "HyperText Markup Language", OptionB: "High Tech Modern Language",
				OptionC: "Home Tool Markup Language", OptionD: "Hyperlink and Text Markup Language",
				CorrectAnswer: "a", Points: 10},
			{ClassID: class.ID, Title: "CSS Selectors", Question: "Which CSS property is used to change text color?",
				OptionA: "font-color", OptionB: "text-color", OptionC: "color", OptionD: "text-style",
				CorrectAnswer: "c", Points: 10},
			{ClassID: class.ID, Title: "JavaScript Functions", Question: "How do you declare a function in JavaScript?",
				OptionA: "function myFunction()", OptionB: "func myFunction()",
				OptionC: "def myFunction()", OptionD: "function: myFunction()",
				CorrectAnswer: "a", Points: 10},
		}
		if err := tx.Create(&quizzes).Error; err != nil {
			return err
		}

		polls := []models.Poll{
			{ClassID: class.ID, Question: "Which topic do you find most interesting?",
				Option1: "Frontend Development", Option2: "Backend Development",
				Option3: "Full Stack Development", Option4: "Mobile Development", Points: 5},
			{ClassID: class.ID, Question: "How many hours per week do you study?",
				Option1: "Less than 5 hours", Option2: "5-10 hours",
				Option3: "10-20 hours", Option4: "More than 20 hours", Points: 5},
			{ClassID: class.ID, Question: "What is your preferred learning method?",
				Option1: "Video Tutorials", Option2: "Reading Documentation",
				Option3: "Hands-on Practice", Option4: "Group Study", Points: 5},
		}
		if err := tx.Create(&polls).Error; err != nil {
			return err
		}

		challenges := []models.Challenge{
			{ClassID: class.ID, Title: "Build a Simple HTML Page",
				Description:   "Create a basic HTML page with header, body, and footer sections",
				ChallengeType: "quick", Points: 20},
			{ClassID: class.ID, Title: "Style with CSS",
				Description:   "Add CSS styling to make your HTML page visually appealing",
				ChallengeType: "daily", Points: 25},
			{ClassID: class.ID, Title: "Add JavaScript Interactivity",
				Description:   "Implement a simple JavaScript function to add interactivity",
				ChallengeType: "weekly", Points: 30},
		}
		if err := tx.Create(&challenges).Error; err != nil {
			return err
		}

		responses := []models.QuizResponse{
			{QuizID: quizzes[0].ID, UserID: student1.ID, Answer: "a", IsCorrect: true, PointsEarned: 10},
			{QuizID: quizzes[1].ID, UserID: student1.ID, Answer: "c", IsCorrect: true, PointsEarned: 10},
			{QuizID: quizzes[0].ID, UserID: student2.ID, Answer: "a", IsCorrect: true, PointsEarned: 10},
		}
		if err := tx.Create(&responses).Error; err != nil {
			return err
		}

		pollResponses := []models.PollResponse{
			{PollID: polls[0].ID, UserID: student1.ID, SelectedOption: 1, PointsEarned: 5},
			{PollID: polls[1].ID, UserID: student1.ID, SelectedOption: 2, PointsEarned: 5},
			{PollID: polls[0].ID, UserID: student2.ID, SelectedOption: 2, PointsEarned: 5},
		}
		if err := tx.Create(&pollResponses).Error; err != nil {
			return err
		}

		challengeResponses := []models.ChallengeResponse{
			{ChallengeID: challenges[0].ID, UserID: student1.ID, Submission: "Completed", PointsEarned: 20, IsCompleted: true},
			{ChallengeID: challenges[1].ID, UserID: student1.ID, Submission: "Completed", PointsEarned: 25, IsCompleted: true},
		}
		if err := tx.Create(&challengeResponses).Error; err != nil {
			return err
		}

		student1.Points = 75
		student2.Points = 15
		if err := tx.Save(student1).Error; err != nil {
			return err
		}
		if err := tx.Save(student2).Error; err != nil {
			return err
		}

		if err := AwardBadges(tx, student1); err != nil {
			return err
		}
		return AwardBadges(tx, student2)
	})
}

func seedUser(tx *gorm.DB, username, email, password, role string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
