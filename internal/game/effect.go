package game

// NoticeKind tells the shell how to decorate a notice.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeInfo:
		return "info"
	case NoticeSuccess:
		return "success"
	case NoticeWarning:
		return "warning"
	case NoticeError:
		return "error"
	default:
		return "unknown"
	}
}

// Notice is a transient message the shell shows on top of the display.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Effect is what a shell must do besides rendering the new session.
type Effect struct {
	// Notice is nil when there is nothing to announce.
	Notice *Notice
	// Terminate ends the session after the notice has been acknowledged. The process exits with status 0.
	Terminate bool
	// Err is the failure behind an error notice. It matches [ErrFileWrite] when the notes could not be saved.
	Err error
}
