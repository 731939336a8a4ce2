package dto

import (
	"courtbook/shared/constant"
	"courtbook/shared/model"
	"courtbook/shared/timezone"
)

// Metadata is the audit block rendered on every response entity.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

// FromModel formats the audit timestamps in the application timezone. Rows that were never
// modified leave the modified_* fields out.
func (m *Metadata) FromModel(audit model.Metadata) {
	m.CreatedAt = timezone.Format(audit.CreatedAt, constant.DateFormat)
	m.CreatedBy = audit.CreatedBy
	m.ModifiedBy = audit.ModifiedBy

	if !audit.ModifiedAt.IsZero() {
		m.ModifiedAt = timezone.Format(audit.ModifiedAt, constant.DateFormat)
	}
}
