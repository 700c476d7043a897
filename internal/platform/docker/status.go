package docker

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ServiceState is the parsed container state of a compose service.
type ServiceState string

const (
	StateRunning    ServiceState = "running"
	StateRestarting ServiceState = "restarting"
	StatePaused     ServiceState = "paused"
	StateExited     ServiceState = "exited"
	StateCreated    ServiceState = "created"

	// StateGone means the service has no container at all.
	StateGone ServiceState = "gone"

	// StateUnknown covers states this package does not model.
	StateUnknown ServiceState = "unknown"
)

// Healthy reports whether the state counts as up for post-launch
// verification.
func (s ServiceState) Healthy() bool {
	return s == StateRunning
}

// psEntry mirrors the fields of `compose ps --format json` output this
// package cares about.
type psEntry struct {
	Service string `json:"Service"`
	Name    string `json:"Name"`
	State   string `json:"State"`
}

// parseStatus extracts the state of one service from compose ps JSON.
//
// Compose v2 emits one JSON object per line; some releases (and the
// legacy standalone binary) emit a single JSON array. Both forms are
// accepted.
func parseStatus(data []byte, service string) (ServiceState, error) {
	entries, err := decodePSOutput(data)
	if err != nil {
		return StateUnknown, err
	}

	for _, e := range entries {
		if e.Service == service || e.Name == service {
			return normalizeState(e.State), nil
		}
	}
	return StateGone, nil
}

func decodePSOutput(data []byte) ([]psEntry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var entries []psEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse compose ps output: %w", err)
		}
		return entries, nil
	}

	var entries []psEntry
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var e psEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, fmt.Errorf("failed to parse compose ps line %q: %w", line, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read compose ps output: %w", err)
	}
	return entries, nil
}

func normalizeState(raw string) ServiceState {
	switch ServiceState(strings.ToLower(strings.TrimSpace(raw))) {
	case StateRunning:
		return StateRunning
	case StateRestarting:
		return StateRestarting
	case StatePaused:
		return StatePaused
	case StateExited, "dead":
		return StateExited
	case StateCreated:
		return StateCreated
	default:
		return StateUnknown
	}
}
