package service

import "strings"

// AssistantService /api/ai/code-assistant 背后的规则匹配器。
// 纯粹的子串/关键字判定，不调用任何外部模型。
type AssistantService struct{}

func NewAssistantService() *AssistantService {
	return &AssistantService{}
}

// Suggest 根据提交的源码和可选的报错信息给出固定建议列表
func (s *AssistantService) Suggest(code, errorMessage string) []string {
	var suggestions []string

	if !strings.Contains(code, "print") {
		suggestions = append(suggestions, "Add a print() statement so your program produces visible output.")
	}

	if !strings.Contains(code, "def ") {
		suggestions = append(suggestions, "Consider wrapping your logic in a function with def to make it reusable.")
	}

	if msg := errorSuggestion(errorMessage); msg != "" {
		suggestions = append(suggestions, msg)
	}

	if longWithoutComments(code) {
		suggestions = append(suggestions, "Your code is getting long; add # comments to explain the key steps.")
	}

	if strings.Contains(code, "for ") && !strings.Contains(code, " in ") {
		suggestions = append(suggestions, "A Python for-loop needs an iterable: for item in collection.")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Code looks reasonable. Test it against the edge cases before submitting.")
	}

	return suggestions
}

func errorSuggestion(errorMessage string) string {
	switch {
	case errorMessage == "":
		return ""
	case strings.Contains(errorMessage, "SyntaxError"):
		return "SyntaxError: check for missing colons, unmatched parentheses or quotes."
	case strings.Contains(errorMessage, "IndentationError"):
		return "IndentationError: Python blocks must be indented consistently (4 spaces is the convention)."
	case strings.Contains(errorMessage, "NameError"):
		return "NameError: a variable is used before it is defined; check spelling and assignment order."
	case strings.Contains(errorMessage, "TypeError"):
		return "TypeError: an operation got an unexpected type; convert values with int(), str() or float() first."
	case strings.Contains(errorMessage, "IndexError"):
		return "IndexError: a list index is out of range; remember indexes start at 0."
	default:
		return "Read the last line of the traceback: it names the error and the line where it happened."
	}
}

// longWithoutComments 15 行以上且没有任何注释
func longWithoutComments(code string) bool {
	lines := strings.Split(code, "\n")
	count := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") || strings.Contains(trimmed, "#") {
			return false
		}
		count++
	}
	return count > 15
}
