package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRelayEventsCommandIsNotConstructed = errors.New(
	"RelayEventsCommand must be created via NewRelayEventsCommand constructor",
)

// RelayEventsCommand represents one drain pass over the pending tail of the
// event log.
type RelayEventsCommand struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewRelayEventsCommand creates a command draining up to limit pending events.
func NewRelayEventsCommand(limit int) (RelayEventsCommand, error) {
	relayCommand := RelayEventsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := relayCommand.setLimit(limit); err != nil {
		return RelayEventsCommand{}, err
	}

	return relayCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RelayEventsCommand) Validate() error {
	return c.guard.Validate(ErrRelayEventsCommandIsNotConstructed)
}

// Limit returns the maximum number of events drained per pass.
func (c RelayEventsCommand) Limit() int {
	return c.limit
}

func (c *RelayEventsCommand) setLimit(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("limit",
			fmt.Errorf("%d is not a valid batch limit", limit))
	}

	c.limit = limit
	return nil
}
