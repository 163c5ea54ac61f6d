package service

import "time"

// Timer is a pending one-shot callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
