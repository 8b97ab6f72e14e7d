// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements rule based validation for raw configuration values
//              including type checking, range validation, required fields,
//              and enumerated values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-19 v0.2.0: OneOf rule, deterministic error order, dropped
//                      struct binding

package config

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the field is required
	Type     string   // Expected type: "string", "int" or "bool"
	Min      *int     // Minimum value (ints) or length (strings)
	Max      *int     // Maximum value (ints) or length (strings)
	OneOf    []string // Allowed values for strings, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// IntPtr is a helper for Min and Max
func IntPtr(v int) *int {
	return &v
}

// Validate validates the configuration against the provided rules.
// Errors are reported in key order.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// validateField validates a single configuration field
func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.getValue(key)
	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "string":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
		if err := checkBounds(key, len(s), rule, "length"); err != nil {
			return err
		}
		if len(rule.OneOf) > 0 && !containsFold(rule.OneOf, s) {
			return fmt.Errorf("field '%s' must be one of %s, got %q", key, strings.Join(rule.OneOf, ", "), s)
		}
	case "int":
		n, ok := toInt(value)
		if !ok {
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
		if err := checkBounds(key, n, rule, "value"); err != nil {
			return err
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	case "":
	default:
		return fmt.Errorf("field '%s' has unsupported rule type %q", key, rule.Type)
	}

	return nil
}

func checkBounds(key string, n int, rule ValidationRule, what string) error {
	if rule.Min != nil && n < *rule.Min {
		return fmt.Errorf("field '%s' %s %d is below minimum %d", key, what, n, *rule.Min)
	}
	if rule.Max != nil && n > *rule.Max {
		return fmt.Errorf("field '%s' %s %d exceeds maximum %d", key, what, n, *rule.Max)
	}
	return nil
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int64(v)) {
			return int(v), true
		}
	}
	return 0, false
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
