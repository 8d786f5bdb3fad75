// Package controller drives instrumented algorithms one checkpoint at a time.
//
// A Controller owns a single run: the selected catalog algorithm bound to a
// buffer from a builder.Source. Run executes the command loop; every public
// request (Start, Pause, Step, Reset, Select, SetSpeed, SetBufferSize,
// Regenerate) is a message to that loop, so requests never block and may be
// issued from inside event.Sink callbacks.
//
// Mode transitions:
//
//	idle     --Start--> continuous   --Pause--> paused
//	idle     --Step-->  step         --Start--> continuous
//	any run  --Step-->  step (one checkpoint)
//	any run  --return-> complete
//	any      --Reset/Select/SetBufferSize/Regenerate/fault--> idle
//
// In continuous mode the loop waits Speed between checkpoints on the injected
// clock, serving requests while it waits. Faults (ConfigurationFault,
// AlgorithmFault) are logged, counted, reported through OnStatus and followed
// by a reset.
package controller
