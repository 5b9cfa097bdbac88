package datepicker

import (
	"github.com/llehouerou/datecombo/internal/datesel"
	"github.com/llehouerou/datecombo/internal/ui/action"
)

// ValueChanged is emitted after the user commits a new date.
type ValueChanged struct {
	Value datesel.Date
}

// ActionType implements action.Action.
func (a ValueChanged) ActionType() string { return "datepicker.value_changed" }

// ActionMsg creates an action.Msg for a datepicker action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "datepicker", Action: a}
}
