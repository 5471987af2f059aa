package i

import "github.com/beka-birhanu/icare/route"

// Logger is the leveled logger every component receives.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}

// VerdictRecorder observes every verdict handed out.
type VerdictRecorder interface {
	RecordVerdict(v route.Verdict, steps route.Steps)
}
