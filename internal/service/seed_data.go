package service

import "pylearn_backend/internal/model"

// 样例数据集，来源于平台上线前整理的课程内容

func seedCourses() []model.Course {
	return []model.Course{
		{Title: "Python Basics", Description: "Learn the fundamentals of Python programming", Level: model.Beginner, OrderNum: 1, Icon: "📚"},
		{Title: "Data Types & Variables", Description: "Master Python data types and variables", Level: model.Beginner, OrderNum: 2, Icon: "🔢"},
		{Title: "Control Flow", Description: "Understand loops and conditionals", Level: model.Intermediate, OrderNum: 3, Icon: "🔄"},
		{Title: "Functions", Description: "Write reusable code with functions", Level: model.Intermediate, OrderNum: 4, Icon: "⚡"},
		{Title: "OOP Concepts", Description: "Object-Oriented Programming in Python", Level: model.Advanced, OrderNum: 5, Icon: "🎯"},
	}
}

func seedArticles(courses []model.Course) []model.Article {
	return []model.Article{
		{
			CourseID: courses[0].ID,
			Title:    "Introduction to Python",
			Content: `# Welcome to Python!

Python is a high-level, interpreted programming language known for its simplicity and readability.

## Why Learn Python?
- Easy to learn and use
- Versatile (web, data science, AI, automation)
- Large community and libraries

## Your First Python Program
` + "```python\nprint(\"Hello, World!\")\n```" + `

This simple line prints text to the console. Welcome to Python programming!`,
			OrderNum: 1,
			VideoURL: "https://www.youtube.com/embed/nLRL_NcnK-4",
		},
		{
			CourseID: courses[0].ID,
			Title:    "Installing Python",
			Content: `# Setting Up Python

## Installation Steps
1. Visit python.org
2. Download Python 3.x
3. Run the installer
4. Check 'Add Python to PATH'

## Verify Installation
` + "```\npython --version\n```" + `

You should see Python 3.x.x displayed!`,
			OrderNum: 2,
		},
		{
			CourseID: courses[1].ID,
			Title:    "Variables in Python",
			Content: `# Understanding Variables

Variables are containers for storing data values.

## Creating Variables
` + "```python\nname = \"Alice\"\nage = 25\nheight = 5.6\nis_student = True\n```" + `

## Variable Rules
- Start with letter or underscore
- Case-sensitive (age != Age)
- Cannot use Python keywords`,
			OrderNum: 1,
		},
	}
}

func seedQuizzes(articles []model.Article) []model.Quiz {
	return []model.Quiz{
		{ArticleID: articles[0].ID, Question: "What does print() do in Python?", OptionA: "Saves data to file", OptionB: "Displays output to console", OptionC: "Creates a variable", OptionD: "Imports a module", CorrectAnswer: "B", Points: 10},
		{ArticleID: articles[0].ID, Question: "Is Python a compiled or interpreted language?", OptionA: "Compiled", OptionB: "Interpreted", OptionC: "Both", OptionD: "Neither", CorrectAnswer: "B", Points: 10},
		{ArticleID: articles[2].ID, Question: "Which is a valid variable name?", OptionA: "2name", OptionB: "my-var", OptionC: "my_var", OptionD: "my var", CorrectAnswer: "C", Points: 10},
		{ArticleID: articles[2].ID, Question: "What will this print: x = 5; print(x)?", OptionA: "x", OptionB: "5", OptionC: "'5'", OptionD: "Error", CorrectAnswer: "B", Points: 10},
	}
}

func seedLessons() []model.Lesson {
	return []model.Lesson{
		{Title: "Introduction to Python", Description: "Learn the basics of Python programming", VideoURL: "https://www.youtube.com/embed/nLRL_NcnK-4", Duration: "2:01:42", OrderNum: 1},
		{Title: "Conditionals and Loops", Description: "Master control flow in Python", VideoURL: "https://www.youtube.com/embed/FHZpJGMKOxI", Duration: "1:57:01", OrderNum: 2},
		{Title: "Functions and Variables", Description: "Write reusable code with functions", VideoURL: "https://www.youtube.com/embed/s3IvdkCq2_c", Duration: "2:17:28", OrderNum: 3},
		{Title: "Lists and Dictionaries", Description: "Work with Python data structures", VideoURL: "https://www.youtube.com/embed/mIBCLloUj5s", Duration: "2:06:56", OrderNum: 4},
	}
}

func seedChallenges(lessons []model.Lesson) []model.Challenge {
	return []model.Challenge{
		{
			LessonID:    lessons[0].ID,
			Title:       "Hello World",
			Description: "Write a program that prints 'Hello, World!'",
			StarterCode: "# Write your code here\n",
			TestCases:   []model.TestCase{{Input: "", Expected: "Hello, World!"}},
			Difficulty:  model.Beginner,
			Points:      10,
		},
		{
			LessonID:    lessons[0].ID,
			Title:       "Variables and Input",
			Description: "Create a variable and print a personalized greeting",
			StarterCode: "# Get user's name and print greeting\nname = input('What is your name? ')\n",
			TestCases:   []model.TestCase{{Input: "Alice", Expected: "Hello, Alice!"}},
			Difficulty:  model.Beginner,
			Points:      10,
		},
		{
			LessonID:    lessons[1].ID,
			Title:       "Even or Odd",
			Description: "Write a function that determines if a number is even or odd",
			StarterCode: "def check_even_odd(number):\n    # Write your code here\n    pass\n",
			TestCases: []model.TestCase{
				{Input: "4", Expected: "even"},
				{Input: "7", Expected: "odd"},
			},
			Difficulty:  model.Intermediate,
			Points:      20,
		},
	}
}
