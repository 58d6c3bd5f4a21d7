package planner

import (
	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

// ConversationStage tracks where one chat session is in the planning
// dialogue.
type ConversationStage string

const (
	StageIdle               ConversationStage = "idle"
	StageAwaitingParameters ConversationStage = "awaiting_parameters"
	StagePlanPresented      ConversationStage = "plan_presented"
)

// ConversationState is the per-session state threaded through every
// chat turn. PendingPlan is the single slot holding the most recently
// presented, not-yet-saved plan; presenting a new plan overwrites it
// (last write wins). The state is a value passed in and returned, never
// ambient.
type ConversationState struct {
	Stage       ConversationStage `json:"stage"`
	PendingPlan *models.TripPlan  `json:"pending_plan,omitempty"`
}

// NewConversationState returns the initial state for a fresh session.
func NewConversationState() ConversationState {
	return ConversationState{Stage: StageIdle}
}

// withPlan re-enters PlanPresented with a freshly presented plan,
// discarding whatever was pending before.
func (s ConversationState) withPlan(plan *models.TripPlan) ConversationState {
	return ConversationState{Stage: StagePlanPresented, PendingPlan: plan}
}

// awaiting moves to AwaitingParameters without touching the pending slot.
func (s ConversationState) awaiting() ConversationState {
	return ConversationState{Stage: StageAwaitingParameters, PendingPlan: s.PendingPlan}
}
