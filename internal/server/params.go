package server

import "fmt"

// Parameter extraction helpers for tool arguments. JSON numbers arrive as
// float64.

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func requireString(params map[string]interface{}, key string) (string, error) {
	s := stringParam(params, key, "")
	if s == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return s, nil
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func requireInt(params map[string]interface{}, key string) (int, error) {
	v, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	switch v.(type) {
	case int, int64, float64:
		return intParam(params, key, 0), nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, v)
	}
}

func floatParam(params map[string]interface{}, key string, defaultVal float64) float64 {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
	}
	return defaultVal
}
