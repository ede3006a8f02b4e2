package commands

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/ports"
)

// gatewayError makes sure a failed gateway call surfaces as either
// ports.ErrOrderNotFound or ports.ErrGatewayFailure.
func gatewayError(err error) error {
	if errors.Is(err, ports.ErrGatewayFailure) || errors.Is(err, ports.ErrOrderNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", ports.ErrGatewayFailure, err)
}
