// Package events implements the shell's synchronous publish/subscribe
// bus. Listeners for a single event name run in registration order; a
// panic inside one listener is recovered and logged without stopping
// its siblings or the emitter. There is no ordering guarantee across
// different event names.
//
// Go function values are not comparable, so removal is expressed
// through the Subscription returned by On rather than by passing the
// callback back in.
package events
