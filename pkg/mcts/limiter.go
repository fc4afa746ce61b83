package mcts

import (
	"context"
	"sync/atomic"
)

type StopReason int

const (
	StopNone      StopReason = iota
	StopInterrupt            = 1  // Stopped by user, by calling .SetStop(true) or context cancellation
	StopMovetime             = 2  // Time limit reached
	StopNodes                = 4  // Tree size limit reached
	StopDepth                = 8  // Depth limit reached
	StopCycles               = 16 // Cycle limit reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopNodes, "Nodes"},
		{StopDepth, "Depth"},
		{StopCycles, "Cycles"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

type LimiterLike interface {
	SetContext(ctx context.Context)
	// Set the limits
	SetLimits(*Limits)
	// Get the limits
	Limits() *Limits
	// Get elapsed time in ms (from the last 'Reset' call)
	Elapsed() uint32
	// Set the stop signal, will cause to exit search if set to true
	SetStop(bool)
	// Get the stop signal
	Stop() bool
	// Reset the limiter's flags, called on search setup
	Reset()
	// Wheter the search may run another iteration, called in the main search loop
	Ok(size, depth, cycles uint32) bool
	// Get the reason why the search was stopped, valid after search ends
	StopReason() StopReason
	// Evaluate stop reason based on current state, and set it internally,
	// called once after the search loop ends
	EvaluateStopReason(size, depth, cycles uint32)
}

type Limiter struct {
	limits *Limits
	Timer  *_Timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		Timer:  _NewTimer(),
		ctx:    context.Background(),
	}
}

func (l *Limiter) Reset() {
	l.Timer.Movetime(l.limits.Movetime)
	l.Timer.Reset()
	l.stop.Store(false)
	l.reason = StopNone
}

func (l *Limiter) EvaluateStopReason(size, depth, cycles uint32) {
	l.reason = StopReason(l.LimitMask(size, depth, cycles))
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

func (l *Limiter) Elapsed() uint32 {
	return uint32(l.Timer.Deltatime())
}

func toMask(set bool, reason StopReason) int {
	if set {
		return int(reason)
	}
	return 0
}

// Bitmask of the limits reached so far, see StopReason
func (l *Limiter) LimitMask(size, depth, cycles uint32) int {
	stop := l.Stop()
	// If infinite, only the stop signal ends the search
	if l.limits.Infinite {
		return toMask(stop, StopInterrupt)
	}

	limitMask := 0
	limitMask |= toMask(stop, StopInterrupt)
	limitMask |= toMask(l.Timer.IsEnd(), StopMovetime)
	limitMask |= toMask(l.limits.Nodes <= size, StopNodes)
	limitMask |= toMask(l.limits.Depth <= int(depth), StopDepth)
	limitMask |= toMask(l.limits.Cycles <= cycles, StopCycles)
	return limitMask
}

func (l *Limiter) Ok(size, depth, cycles uint32) bool {
	return l.LimitMask(size, depth, cycles) == 0
}
