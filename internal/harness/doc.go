// Package harness provides the shared test context for end-to-end tests
// against the dotnet binary under test.
//
// A Harness is created per test instance and owns three things:
//
//   - a lazily created scoped temp directory (Temp), removed at teardown
//     unless DOTNET_TEST_PRESERVE_TEMP is truthy
//   - template scaffolding (CreateTemplate) through the tool's "new"
//     command, with the exactly-one generated project file contract
//   - executable invocation (RunExecutable and friends), routing portable
//     build outputs through "dotnet exec" and self-contained ones directly
//
// Shared, process-wide resources (the repository root, fixture assets,
// the dotnet binary path and the working folder) come from the assets
// package's once-initialized accessor, together with the settings they
// were resolved with.
//
// Usage:
//
//	func TestConsoleTemplate(t *testing.T) {
//	    h := harness.New(t)
//	    dir := filepath.Join(h.Temp(), "console")
//	    h.CreateTemplate("console", dir, "C#", "net6.0")
//	}
//
// Every external-process or filesystem failure is surfaced immediately as
// a hard test failure. There are no retries.
package harness
