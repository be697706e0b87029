package booking

import "styledecor/models"

// Action identifies one operation against the lifecycle engine.
type Action string

const (
	ActionAssign    Action = "assign"
	ActionAccept    Action = "accept"
	ActionReject    Action = "reject"
	ActionAdvance   Action = "advance"
	ActionSettle    Action = "settle"
	ActionReconcile Action = "reconcile"
)

// rule is one row of the lifecycle transition table. A nil from set means
// the action is allowed from any current status; a nil targets set means the
// action lands on the fixed `to` status.
type rule struct {
	from     map[models.ServiceStatus]bool
	response models.DecoratorResponse
	checkRsp bool
	targets  map[models.ServiceStatus]bool
	to       models.ServiceStatus
}

// advanceTargets is the closed set of statuses an accepted decorator may
// move a booking to.
var advanceTargets = map[models.ServiceStatus]bool{
	models.StatusPlanning:          true,
	models.StatusMaterialsPrepared: true,
	models.StatusOnTheWay:          true,
	models.StatusSetupInProgress:   true,
	models.StatusCompleted:         true,
}

// transitionTable is the single source of truth for which action is legal
// in which state. Any (state, action) pair not admitted here is rejected
// without mutation.
var transitionTable = map[Action]rule{
	ActionAssign: {
		to: models.StatusAssigned,
	},
	ActionAccept: {
		from:     map[models.ServiceStatus]bool{models.StatusAssigned: true},
		response: models.ResponsePending,
		checkRsp: true,
		to:       models.StatusPlanning,
	},
	ActionReject: {
		from:     map[models.ServiceStatus]bool{models.StatusAssigned: true},
		response: models.ResponsePending,
		checkRsp: true,
		to:       models.StatusPending,
	},
	ActionAdvance: {
		response: models.ResponseAccepted,
		checkRsp: true,
		targets:  advanceTargets,
	},
	ActionSettle: {
		to: models.StatusPending,
	},
	ActionReconcile: {
		from: map[models.ServiceStatus]bool{
			models.StatusPending:           true,
			models.StatusAssigned:          true,
			models.StatusPlanning:          true,
			models.StatusMaterialsPrepared: true,
			models.StatusOnTheWay:          true,
			models.StatusSetupInProgress:   true,
		},
		to: models.StatusCompleted,
	},
}

// admit checks a (booking, action, target) triple against the transition
// table and returns the resulting status. It performs no mutation.
func admit(b *models.Booking, act Action, target models.ServiceStatus) (models.ServiceStatus, error) {
	r, ok := transitionTable[act]
	if !ok {
		return "", NewLifecycleError(CodeInvalidTransition, "unknown action")
	}
	if r.from != nil && !r.from[b.ServiceStatus] {
		return "", NewLifecycleError(CodeInvalidTransition,
			"action "+string(act)+" not allowed from status "+string(b.ServiceStatus))
	}
	if r.checkRsp && b.DecoratorResponse != r.response {
		return "", NewLifecycleError(CodeInvalidTransition,
			"decorator response is "+string(b.DecoratorResponse))
	}
	if r.targets != nil {
		if !r.targets[target] {
			return "", NewLifecycleError(CodeInvalidTransition,
				"invalid target status "+string(target))
		}
		return target, nil
	}
	return r.to, nil
}
