package exitcodes

// Exit codes for dir-sweeper
// Failed deletions of individual entries never change the exit code
const (
	Success       = 0 // Sweep ran to completion
	UsageError    = 1 // Unexpected arguments or flags
	InvalidConfig = 2 // Embedded defaults failed to decode or validate
	RuntimeError  = 4 // Scan root could not be resolved, listed, or reported
)
