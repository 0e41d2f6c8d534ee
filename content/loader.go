package content

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// CommentPrefix marks ignored lines in level files
// '#' is a path cell so it cannot double as a comment marker
const CommentPrefix = "//"

// MaxLevelWidth bounds a level row in cells
const MaxLevelWidth = 80

// LoadLevelFile reads level rows from a text file
// Comment lines are skipped, trailing whitespace and carriage returns are trimmed
func LoadLevelFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("content: open level: %w", err)
	}
	defer f.Close()

	var rows []string
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(strings.TrimSpace(line), CommentPrefix) {
			continue
		}
		if strings.ContainsRune(line, '\t') {
			return nil, fmt.Errorf("content: %s:%d: tabs are not allowed in level rows", path, lineNum)
		}
		if len([]rune(line)) > MaxLevelWidth {
			return nil, fmt.Errorf("content: %s:%d: row exceeds %d cells", path, lineNum, MaxLevelWidth)
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("content: read level: %w", err)
	}

	// Trailing blank rows would inflate the field height
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}
