package normalization

import (
  "strings"
)

func ParseInputString(input string) string {
  normalized := strings.ToLower(strings.TrimSpace(input))
  return normalized
}

func ParseInputStringPtr(input *string) *string {
  if input == nil {
    return nil
  }
  normalized := strings.ToLower(strings.TrimSpace(*input))
  return &normalized
}

// ParsePlaceName normalizes provinces and localities. Place names keep their
// original casing, only surrounding whitespace is dropped.
func ParsePlaceName(input string) string {
  return strings.TrimSpace(input)
}
