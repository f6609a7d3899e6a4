package client

import (
	"sync"
	"time"
)

// Debounce returns a function that delays invoking fn until delay has
// passed since the last call. Useful for search-as-you-type inputs.
func Debounce(delay time.Duration, fn func()) func() {
	var mu sync.Mutex
	var timer *time.Timer
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, fn)
	}
}

// Throttle returns a function that invokes fn at most once per delay,
// dropping calls arriving inside the window.
func Throttle(delay time.Duration, fn func()) func() {
	var mu sync.Mutex
	var last time.Time
	return func() {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		if now.Sub(last) < delay {
			return
		}
		last = now
		fn()
	}
}
