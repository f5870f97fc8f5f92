package highscore

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Encode renders scores as the text record: one decimal integer per line,
// in the given order, each line terminated by a newline.
func Encode(scores []int) []byte {
	var buf bytes.Buffer
	for _, s := range scores {
		buf.WriteString(strconv.Itoa(s))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Decode parses a text record. Every line must hold exactly one integer
// (surrounding whitespace allowed). An empty record decodes to an empty list.
func Decode(data []byte) ([]int, error) {
	text := string(data)
	if text == "" {
		return []int{}, nil
	}
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	scores := make([]int, 0, len(lines))
	for i, line := range lines {
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("highscore: line %d: %w", i+1, err)
		}
		scores = append(scores, v)
	}
	return scores, nil
}
