package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/bitmark-inc/relief-api/schema"
)

// CreateHelp inserts a help request. The insertion sequence is assigned by
// the database and written back into help.
func (s *ORMStore) CreateHelp(help *schema.HelpRequest) error {
	return s.ormDB.Create(help).Error
}

// GetHelp returns a help request by its id
func (s *ORMStore) GetHelp(helpID string) (*schema.HelpRequest, error) {
	if _, err := uuid.Parse(helpID); err != nil {
		return nil, ErrRequestNotExist
	}

	var help schema.HelpRequest
	if err := s.ormDB.Where("id = ?", helpID).First(&help).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	return &help, nil
}

// ListHelps returns help requests matching the filter in insertion order
func (s *ORMStore) ListHelps(filter HelpFilter) ([]schema.HelpRequest, error) {
	helps := []schema.HelpRequest{}

	q := s.ormDB.Model(schema.HelpRequest{})
	if filter.RequesterID != "" {
		q = q.Where("requester_id = ?", filter.RequesterID)
	}
	if len(filter.Statuses) > 0 {
		q = q.Where("status = ANY(?)", pq.Array(statusStrings(filter.Statuses)))
	}
	if len(filter.Types) > 0 {
		q = q.Where("type = ANY(?)", pq.Array(filter.Types))
	}

	if err := q.Order("seq").Find(&helps).Error; err != nil {
		return nil, err
	}

	return helps, nil
}

// UpdateHelpStatus updates the status of a request only when its current
// status is still `t.From`. The status change and its audit entry are
// committed in one transaction. The audit sequence is assigned by the
// database and written back into t.
func (s *ORMStore) UpdateHelpStatus(t *schema.HelpTransition) (*schema.HelpRequest, error) {
	if _, err := uuid.Parse(t.HelpID); err != nil {
		return nil, ErrRequestNotExist
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	// UpdateColumns keeps gorm from overwriting updated_at with its own clock
	result := tx.Model(schema.HelpRequest{}).
		Where("id = ? AND status = ?", t.HelpID, t.From).
		UpdateColumns(map[string]interface{}{
			"status":     t.To,
			"updated_at": t.CreatedAt,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		tx.Rollback()
		if _, err := s.GetHelp(t.HelpID); err != nil {
			return nil, err
		}
		return nil, ErrStatusMismatch
	}

	if err := tx.Create(t).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var help schema.HelpRequest
	if err := tx.Where("id = ?", t.HelpID).First(&help).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &help, nil
}

// ListHelpTransitions returns the audit trail of a request, oldest first
func (s *ORMStore) ListHelpTransitions(helpID string) ([]schema.HelpTransition, error) {
	transitions := []schema.HelpTransition{}

	if _, err := uuid.Parse(helpID); err != nil {
		return transitions, nil
	}

	if err := s.ormDB.Where("help_id = ?", helpID).
		Order("seq").
		Find(&transitions).Error; err != nil {
		return nil, err
	}

	return transitions, nil
}
