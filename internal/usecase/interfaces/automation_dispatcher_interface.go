package interfaces

import (
	"context"
	"inspection_billing/internal/domain/entities"
)

//go:generate mockgen -source=automation_dispatcher_interface.go -destination=mocks/mock_automation_dispatcher_interface.go -package=mock_interfaces

// IAutomationDispatcher hands automation trigger events to the automation system.
// Callers treat it as best-effort.
type IAutomationDispatcher interface {
	Dispatch(ctx context.Context, event entities.AutomationEvent) error
}
