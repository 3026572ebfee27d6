package crossword

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// NormalizeWords upper-cases and deduplicates a word list, keeping first
// appearance order.
func NormalizeWords(words []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = upper.String(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// Load reads a puzzle from a structure file and a words file. In the
// structure file each line is one grid row and an underscore marks an open
// cell; any other character blocks the cell. The grid width is the longest
// line. The words file has one candidate word per line.
func Load(structurePath, wordsPath string) (*Crossword, error) {
	structure, err := loadStructure(structurePath)
	if err != nil {
		return nil, err
	}
	words, err := loadWords(wordsPath)
	if err != nil {
		return nil, err
	}
	c := New(structure, words)
	log.Debug().Int("height", c.Height).Int("width", c.Width).
		Int("variables", len(c.Variables)).Int("words", len(c.Words)).
		Msg("loaded crossword")
	return c, nil
}

func loadStructure(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening structure file: %w", err)
	}
	defer f.Close()

	var lines []string
	width := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		lines = append(lines, line)
		if len(line) > width {
			width = len(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading structure file: %w", err)
	}

	structure := make([][]bool, len(lines))
	for i, line := range lines {
		structure[i] = make([]bool, width)
		for j, ch := range line {
			structure[i][j] = ch == '_'
		}
	}
	return structure, nil
}

func loadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening words file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading words file: %w", err)
	}
	return words, nil
}
