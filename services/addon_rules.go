package services

import (
	"fmt"

	"github.com/Naitik2408/pizza-sub001/entity"
)

// RuleViolation reports a selection-count breach for one add-on group. It is
// returned, never panicked, and the input selection is left untouched.
type RuleViolation struct {
	GroupID   uint   `json:"groupId"`
	GroupName string `json:"groupName"`
	Message   string `json:"message"`
}

func (e *RuleViolation) Error() string { return e.Message }

// ToggleAddOn applies one tap on an add-on within its group and returns the
// resulting selection. Rules, in order:
//  1. removing below MinSelect on a required group is rejected
//  2. otherwise a selected candidate is removed
//  3. at MaxSelect: single-choice groups replace (radio semantics),
//     multi-choice groups reject
//  4. otherwise the candidate is appended
func ToggleAddOn(group *entity.AddOnGroup, current []SelectedAddOn, candidate SelectedAddOn) ([]SelectedAddOn, *RuleViolation) {
	idx := -1
	for i, s := range current {
		if s.AddOnID == candidate.AddOnID {
			idx = i
			break
		}
	}

	if idx >= 0 {
		if group.IsRequired && len(current)-1 < group.MinSelect {
			return current, &RuleViolation{
				GroupID:   group.ID,
				GroupName: group.Name,
				Message:   fmt.Sprintf("%s: must select at least %d", group.Name, group.MinSelect),
			}
		}
		out := make([]SelectedAddOn, 0, len(current)-1)
		out = append(out, current[:idx]...)
		out = append(out, current[idx+1:]...)
		return out, nil
	}

	if len(current) >= group.MaxSelect {
		if group.MaxSelect == 1 {
			return []SelectedAddOn{candidate}, nil
		}
		return current, &RuleViolation{
			GroupID:   group.ID,
			GroupName: group.Name,
			Message:   fmt.Sprintf("%s: can only select up to %d", group.Name, group.MaxSelect),
		}
	}

	out := make([]SelectedAddOn, 0, len(current)+1)
	out = append(out, current...)
	out = append(out, candidate)
	return out, nil
}

// ValidateSelections is the final gate before customization is accepted into
// the cart: every required group needs at least MinSelect choices. Groups are
// checked independently so the caller can surface all failures at once.
func ValidateSelections(groups []entity.AddOnGroup, byGroup map[uint][]SelectedAddOn) (bool, map[uint]string) {
	errs := make(map[uint]string)
	for i := range groups {
		g := &groups[i]
		sel := byGroup[g.ID]
		if len(sel) > g.MaxSelect {
			errs[g.ID] = fmt.Sprintf("%s: can only select up to %d", g.Name, g.MaxSelect)
			continue
		}
		if g.IsRequired && len(sel) < g.MinSelect {
			errs[g.ID] = fmt.Sprintf("%s: must select at least %d", g.Name, g.MinSelect)
		}
	}
	return len(errs) == 0, errs
}
