package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// promptProblem reads rows, cols, and a count for each of the five piece
// kinds from in, echoing prompts to out. Grounded in the Python
// original's cmd_util.input_int, which loops a prompt until it parses a
// non-negative integer; this keeps the same "reprompt on bad input"
// behavior but bounds it to stdin/stdout interfaces so it's testable
// against an in-memory reader.
func promptProblem(in io.Reader, out io.Writer) (int, int, map[byte]int, error) {
	reader := bufio.NewReader(in)

	rows, err := promptInt(reader, out, "rows", 2)
	if err != nil {
		return 0, 0, nil, err
	}
	cols, err := promptInt(reader, out, "cols", 2)
	if err != nil {
		return 0, 0, nil, err
	}

	// Ordered to match piece.AllKinds(): kings, queens, bishops, rooks,
	// knights. A map would iterate in random order, prompting for the
	// same five counts in a different sequence each run.
	order := []struct {
		sym   byte
		label string
	}{
		{'K', "kings"}, {'Q', "queens"}, {'B', "bishops"}, {'R', "rooks"}, {'N', "knights"},
	}

	counts := map[byte]int{}
	for _, p := range order {
		n, err := promptInt(reader, out, p.label, 0)
		if err != nil {
			return 0, 0, nil, err
		}
		counts[p.sym] = n
	}

	return rows, cols, counts, nil
}

// promptInt repeatedly prompts label on out until in yields an integer
// that parses and is >= min, then returns it.
func promptInt(reader *bufio.Reader, out io.Writer, label string, min int) (int, error) {
	for {
		fmt.Fprintf(out, "%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return 0, fmt.Errorf("reading %s: %w", label, err)
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || n < min {
			fmt.Fprintf(out, "enter an integer >= %d\n", min)
			continue
		}
		return n, nil
	}
}
