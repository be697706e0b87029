package booking

import (
	"testing"

	"styledecor/models"

	"github.com/stretchr/testify/assert"
)

func TestAdmit(t *testing.T) {
	tests := []struct {
		name     string
		booking  models.Booking
		action   Action
		target   models.ServiceStatus
		wantNext models.ServiceStatus
		wantErr  bool
	}{
		{
			name:     "assign from pending",
			booking:  models.Booking{ServiceStatus: models.StatusPending},
			action:   ActionAssign,
			wantNext: models.StatusAssigned,
		},
		{
			name:     "reassign over a pending response",
			booking:  models.Booking{ServiceStatus: models.StatusAssigned, DecoratorResponse: models.ResponsePending},
			action:   ActionAssign,
			wantNext: models.StatusAssigned,
		},
		{
			name:     "accept while assigned and pending",
			booking:  models.Booking{ServiceStatus: models.StatusAssigned, DecoratorResponse: models.ResponsePending},
			action:   ActionAccept,
			wantNext: models.StatusPlanning,
		},
		{
			name:    "accept twice",
			booking: models.Booking{ServiceStatus: models.StatusPlanning, DecoratorResponse: models.ResponseAccepted},
			action:  ActionAccept,
			wantErr: true,
		},
		{
			name:    "accept without assignment",
			booking: models.Booking{ServiceStatus: models.StatusPending},
			action:  ActionAccept,
			wantErr: true,
		},
		{
			name:     "reject while assigned",
			booking:  models.Booking{ServiceStatus: models.StatusAssigned, DecoratorResponse: models.ResponsePending},
			action:   ActionReject,
			wantNext: models.StatusPending,
		},
		{
			name:     "advance to on-the-way after acceptance",
			booking:  models.Booking{ServiceStatus: models.StatusPlanning, DecoratorResponse: models.ResponseAccepted},
			action:   ActionAdvance,
			target:   models.StatusOnTheWay,
			wantNext: models.StatusOnTheWay,
		},
		{
			name:    "advance before acceptance",
			booking: models.Booking{ServiceStatus: models.StatusAssigned, DecoratorResponse: models.ResponsePending},
			action:  ActionAdvance,
			target:  models.StatusOnTheWay,
			wantErr: true,
		},
		{
			name:    "advance to a status outside the lifecycle",
			booking: models.Booking{ServiceStatus: models.StatusPlanning, DecoratorResponse: models.ResponseAccepted},
			action:  ActionAdvance,
			target:  models.ServiceStatus("cancelled"),
			wantErr: true,
		},
		{
			name:    "advance backwards to pending",
			booking: models.Booking{ServiceStatus: models.StatusPlanning, DecoratorResponse: models.ResponseAccepted},
			action:  ActionAdvance,
			target:  models.StatusPending,
			wantErr: true,
		},
		{
			name:     "settle re-opens any status",
			booking:  models.Booking{ServiceStatus: models.StatusCompleted},
			action:   ActionSettle,
			wantNext: models.StatusPending,
		},
		{
			name:     "reconcile an in-progress booking",
			booking:  models.Booking{ServiceStatus: models.StatusSetupInProgress, DecoratorResponse: models.ResponseAccepted},
			action:   ActionReconcile,
			wantNext: models.StatusCompleted,
		},
		{
			name:    "reconcile a completed booking",
			booking: models.Booking{ServiceStatus: models.StatusCompleted},
			action:  ActionReconcile,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := admit(&tt.booking, tt.action, tt.target)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, CodeInvalidTransition, CodeOf(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}
