package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine prompts and reads one trimmed line. Returns false when the input
// stream has ended.
func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprintf(s.out, "  > %s", prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readNonEmpty re-prompts until a non-empty line arrives.
func (s *Session) readNonEmpty(prompt string) (string, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return "", false
		}
		if line != "" {
			return line, true
		}
		s.failure("Input cannot be empty. Please try again.")
	}
}

// readInt re-prompts until any integer arrives.
func (s *Session) readInt(prompt string) (int, bool) {
	return s.readIntWithin(prompt, 0, 0, false, false)
}

// readIntAtLeast re-prompts until an integer >= min arrives.
func (s *Session) readIntAtLeast(prompt string, min int) (int, bool) {
	return s.readIntWithin(prompt, min, 0, true, false)
}

// readIntRange re-prompts until an integer within [min, max] arrives.
func (s *Session) readIntRange(prompt string, min, max int) (int, bool) {
	return s.readIntWithin(prompt, min, max, true, true)
}

func (s *Session) readIntWithin(prompt string, min, max int, checkMin, checkMax bool) (int, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		if line == "" {
			s.failure("Input cannot be empty.")
			continue
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			s.failure("Invalid input. Please enter a valid number.")
			continue
		}

		if checkMin && value < min {
			s.failure(fmt.Sprintf("Value too low. Please enter at least %d.", min))
			continue
		}
		if checkMax && value > max {
			s.failure(fmt.Sprintf("Value too high. Please enter at most %d.", max))
			continue
		}
		return value, true
	}
}
