package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/koscakluka/ema-stage/core/scenes"
)

// readInput returns the contents of the file named by args, or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// parseRoster parses "id:Display Name,id2" into a roster in seating order.
func parseRoster(value string) (scenes.Roster, error) {
	var roster scenes.Roster
	for _, entry := range splitList(value) {
		id, name, _ := strings.Cut(entry, ":")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("invalid roster entry %q", entry)
		}
		if roster.Contains(id) {
			return nil, fmt.Errorf("duplicate roster id %q", id)
		}
		roster = append(roster, scenes.Actor{ID: id, Name: strings.TrimSpace(name)})
	}
	return roster, nil
}

// parseDurations parses "id=ms,id2=ms" into reconciliation targets.
func parseDurations(value string) (map[string]int, error) {
	targets := map[string]int{}
	for _, entry := range splitList(value) {
		id, ms, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid duration entry %q, expected id=ms", entry)
		}
		duration, err := strconv.Atoi(strings.TrimSpace(ms))
		if err != nil || duration <= 0 {
			return nil, fmt.Errorf("invalid duration for %s: %q", id, ms)
		}
		targets[strings.TrimSpace(id)] = duration
	}
	return targets, nil
}

func splitList(value string) []string {
	var entries []string
	for _, entry := range strings.Split(value, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}
