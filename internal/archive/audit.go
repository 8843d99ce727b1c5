package archive

import (
	"encoding/csv"
	"fmt"
	"io"

	"carehome/pkg/domain"
)

var auditHeader = []string{"timestamp", "actor_id", "actor_name", "action", "message"}

// WriteAuditCSV exports the audit trail with a header row, one entry per line.
func WriteAuditCSV(w io.Writer, entries []domain.AuditEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(auditHeader); err != nil {
		return fmt.Errorf("write audit header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write([]string{formatTime(e.Timestamp), e.ActorID, e.ActorName, e.Action, e.Message}); err != nil {
			return fmt.Errorf("write audit entry: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
