package util

import "os"

const (
	ExitCodeOK          = 0
	ExitCodeCheckFailed = 1
	ExitCodeNotAdjacent = 2
	ExitCodeBadInput    = 3
)

// OsExit is swapped out by tests that need to observe the exit code.
var OsExit = os.Exit
