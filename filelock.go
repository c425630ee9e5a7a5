package pwl

import "sync"

// fileLock is a process-local advisory lock scoping reads and writes of
// a PWL's backing file, so no reader ever observes a partial write from
// another goroutine appending to or rewriting the same file. It does not
// reach across processes: a sync.Mutex is enough for that guarantee
// without a platform flock syscall that nothing else in this module
// needs.
type fileLock struct {
	mu sync.Mutex
}

func (l *fileLock) Lock()   { l.mu.Lock() }
func (l *fileLock) Unlock() { l.mu.Unlock() }
