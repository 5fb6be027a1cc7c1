// Package param implements smoothed parameters shared between a control
// thread and the audio thread.
//
// New returns two halves over one atomically published cell:
//
//   - Handle, for the control side. Set and SetNormalized clamp, map and
//     publish the target with a single atomic store. Any number of
//     goroutines may call them; none of them block or allocate.
//   - Param, for the audio side. Smoothed is called at most once per block
//     by the owning node. It samples the latest published target and
//     produces a linear ramp toward it, or a constant block once the ramp
//     has completed.
//
// Only the most recent target is visible to the audio thread. Two writes
// between blocks collapse into the later one, and a write during a ramp
// re-aims the ramp from wherever it currently is.
//
// The ramp is linear in the output domain of the parameter's Unit (linear
// amplitude for Decibels) and always lasts the configured smoothing time
// worth of frames, independent of block size.
package param
