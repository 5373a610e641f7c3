package session

import "time"

func (m *Manager) SetNow(now func() time.Time) {
	m.now = now
}
