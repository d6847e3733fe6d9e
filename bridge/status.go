package bridge

type Status string

const (
	StatusPending         Status = "pending"
	StatusPendingSource   Status = "pending_source"
	StatusSourceConfirmed Status = "source_confirmed"
	StatusBridging        Status = "bridging"
	StatusPendingDest     Status = "pending_dest"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
	StatusRefunded        Status = "refunded"
	StatusExpired         Status = "expired"
)

var statusRank = map[Status]int{
	StatusPending:         0,
	StatusPendingSource:   1,
	StatusSourceConfirmed: 2,
	StatusBridging:        3,
	StatusPendingDest:     4,
	StatusCompleted:       5,
	StatusFailed:          5,
	StatusRefunded:        5,
	StatusExpired:         5,
}

func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusRefunded, StatusExpired:
		return true
	default:
		return false
	}
}

// Merge keeps transfer progress monotonic. A newly reported status only
// replaces the current one when it is further along, and terminal states
// never regress.
func (s Status) Merge(next Status) Status {
	if s.Terminal() {
		return s
	}
	if statusRank[next] >= statusRank[s] {
		return next
	}
	return s
}
