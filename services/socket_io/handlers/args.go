package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Socket.io clients send either a bare value or an object wrapping it under key.

func stringArg(args []any, key string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("missing %s", key)
	}
	switch v := unwrap(args[0], key).(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid %s", key)
}

func intArg(args []any, key string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing %s", key)
	}
	switch v := unwrap(args[0], key).(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), nil
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("invalid %s", key)
}

func unwrap(arg any, key string) any {
	if m, ok := arg.(map[string]any); ok {
		return m[key]
	}
	return arg
}
