package task

import "strings"

func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrInvalidDescription
	}
	return nil
}
