package util

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("username or email already exists")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrCourseNotFound    = errors.New("course not found")
	ErrArticleNotFound   = errors.New("article not found")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrQuizNotFound      = errors.New("quiz not found")
	ErrEmptySubmission   = errors.New("submission body is empty")
)
