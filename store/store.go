package store

import (
	"fmt"

	"github.com/bitmark-inc/relief-api/schema"
)

var (
	ErrRequestNotExist = fmt.Errorf("the request does not exist")
	ErrStatusMismatch  = fmt.Errorf("the request status has been changed by others")
)

// HelpFilter narrows a help request listing. Empty fields match everything.
type HelpFilter struct {
	RequesterID string
	Statuses    []schema.HelpStatus
	Types       []string
}

// HelpStore is the storage collaborator of the help request lifecycle.
// Listings are returned in insertion order.
type HelpStore interface {
	Ping() error

	CreateHelp(help *schema.HelpRequest) error
	GetHelp(helpID string) (*schema.HelpRequest, error)
	ListHelps(filter HelpFilter) ([]schema.HelpRequest, error)

	// UpdateHelpStatus moves a request from t.From to t.To and records t.
	// It returns ErrStatusMismatch without writing anything when the stored
	// status is no longer t.From.
	UpdateHelpStatus(t *schema.HelpTransition) (*schema.HelpRequest, error)
	ListHelpTransitions(helpID string) ([]schema.HelpTransition, error)
}

func (f HelpFilter) match(h *schema.HelpRequest) bool {
	if f.RequesterID != "" && h.RequesterID != f.RequesterID {
		return false
	}

	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if h.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if h.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func statusStrings(statuses []schema.HelpStatus) []string {
	s := make([]string, 0, len(statuses))
	for _, status := range statuses {
		s = append(s, string(status))
	}
	return s
}
