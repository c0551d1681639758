package domain

// SessionType distinguishes work intervals from breaks. The string
// literals are part of the on-disk compatibility surface.
type SessionType string

const (
	SessionWork  SessionType = "work"
	SessionBreak SessionType = "break"
)

// Label returns the human-facing name for the session type.
func (t SessionType) Label() string {
	switch t {
	case SessionWork:
		return "Work"
	case SessionBreak:
		return "Break"
	default:
		return string(t)
	}
}
