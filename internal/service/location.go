package service

import (
	"fmt"
	"time"

	"github.com/blaisecz/sleep-diary/internal/domain"
)

// resolveLocation picks the request timezone when given, else the user's.
func resolveLocation(user *domain.User, override *string) (*time.Location, error) {
	if override != nil && *override != "" {
		loc, err := time.LoadLocation(*override)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown timezone %q", domain.ErrInvalidInput, *override)
		}
		return loc, nil
	}
	return user.Location(), nil
}
