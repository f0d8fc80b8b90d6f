package rips

import "sync"

// A syncer synchronizes access to the fields of a structure and manages
// its daemon goroutines. Read-only accesses are protected with RLock,
// writes with Lock. Daemons must only be spawned with SpawnDaemon and
// stopped with StopDaemons.
type syncer struct {
	stop chan struct{}
	wg   sync.WaitGroup
	sync.RWMutex
}

// SpawnDaemon runs f in a separate goroutine. It is f's responsibility
// to periodically check whether StopChan() is closed and to return when
// it is.
//
// The caller must hold s.Lock.
func (s *syncer) SpawnDaemon(f func()) {
	if s.stop == nil {
		// no daemons have been spawned yet
		s.stop = make(chan struct{})
	}
	s.wg.Add(1)
	go func() {
		f()
		s.wg.Done()
	}()
}

// StopDaemons stops all daemons by closing the channel returned by
// StopChan and waiting for them to return.
//
// The caller must hold s.Lock.
func (s *syncer) StopDaemons() {
	close(s.stop)
	s.wg.Wait()
	s.stop = nil // match the check in SpawnDaemon
}

// StopChan returns a channel which, when closed, instructs all spawned
// daemons to return. Daemons spawned using SpawnDaemon may call
// StopChan without acquiring s.Lock or s.RLock: s.stop is only modified
// before any daemons have been spawned and after all daemons have
// returned.
func (s *syncer) StopChan() <-chan struct{} {
	return s.stop
}
