// Reading and appending case identifier lists: flat text files with one
// identifier per line.
package caseline

import (
	"bufio"
	"os"
	"strings"
	"unicode"
)

// Trim strips the line terminator and any other trailing whitespace.
// Leading and internal whitespace is kept as-is.
func Trim(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// ForEach calls process for each line of filename, trimmed, in file order.
func ForEach(filename string, process func(line string) error) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		if err := process(Trim(scanner.Text())); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// ReadAll returns the trimmed lines of filename in file order.
func ReadAll(filename string) ([]string, error) {
	lines := []string{}

	if err := ForEach(filename, func(line string) error {
		lines = append(lines, line)
		return nil
	}); err != nil {
		return nil, err
	}

	return lines, nil
}

// Append writes the given identifiers to the end of filename, one per line,
// creating the file if it doesn't exist yet.
func Append(filename string, items []string) error {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	for _, item := range items {
		if _, err := file.WriteString(item + "\n"); err != nil {
			file.Close()
			return err
		}
	}

	return file.Close()
}
