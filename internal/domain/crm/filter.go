// Package crm holds the pure CRM domain logic: lead filtering, dashboard
// aggregation, pipeline grouping and child-collection mutations. Nothing in
// this package touches the database; services load leads, apply these
// functions and persist the result.
package crm

import (
	"strings"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
)

// FilterAll is the sentinel value that disables an exact-match filter
const FilterAll = "all"

// Filter narrows a lead collection. Every criterion must pass (conjunctive);
// an empty search or a value of "all" turns the corresponding criterion off.
type Filter struct {
	Search     string `form:"search" json:"search"`
	Status     string `form:"status" json:"status"`
	Source     string `form:"source" json:"source"`
	ClientType string `form:"client_type" json:"client_type"`
	Priority   string `form:"priority" json:"priority"`
	AssignedTo string `form:"assigned_to" json:"assigned_to"`
}

// Matches reports whether the lead passes every active criterion. The search
// term is a case-insensitive substring match over full name, code and contact
// email.
func (f Filter) Matches(l *entity.Lead) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(l.FullName), term) &&
			!strings.Contains(strings.ToLower(l.Code), term) &&
			!strings.Contains(strings.ToLower(l.Contact.Email), term) {
			return false
		}
	}
	if !passes(f.Status, l.Status.String()) {
		return false
	}
	if !passes(f.Source, l.Source.String()) {
		return false
	}
	if !passes(f.ClientType, l.ClientType.String()) {
		return false
	}
	if !passes(f.Priority, l.Priority.String()) {
		return false
	}
	if !passes(f.AssignedTo, l.AssignedTo.String()) {
		return false
	}
	return true
}

// Apply returns the subset of leads matching the filter, preserving order
func (f Filter) Apply(leads []entity.Lead) []entity.Lead {
	matched := make([]entity.Lead, 0, len(leads))
	for i := range leads {
		if f.Matches(&leads[i]) {
			matched = append(matched, leads[i])
		}
	}
	return matched
}

func passes(criterion, value string) bool {
	return criterion == "" || criterion == FilterAll || criterion == value
}
