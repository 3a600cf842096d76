package mini

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mediasan-cli/mediasan/style"
)

// readLine prints the prompt and returns one trimmed line of input.
func (m *mini) readLine(prompt string) (string, error) {
	fmt.Fprintf(m.out, "%s ", style.Bold(prompt))

	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// atoi assumes isNumeric held for s.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// promptIndex asks for a 1-based index until the user supplies one inside
// [1, max]. Anything else re-prompts.
func (m *mini) promptIndex(prompt string, max int) (int, error) {
	for {
		line, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > max {
			m.fail(fmt.Sprintf("enter a number between 1 and %d", max))
			continue
		}

		return choice, nil
	}
}
