package mockless

// T is the minimal capability this library needs from a test framework:
// a way to fail the current test with a message.
//
// *testing.T satisfies it, and so does every runner that mimics the testing
// package's reporting surface. Helpers in this module accept T instead of
// *testing.T so they stay usable from any compatible harness.
//
// T is itself an example of the convention the library documents:
// it names only the operations its consumers actually invoke,
// not the full testing.TB surface.
type T interface {
	// Helper marks the caller as a test helper,
	// so failure locations point at the test, not at this library.
	Helper()
	// Errorf reports a failure and lets the test continue.
	Errorf(format string, args ...any)
}
