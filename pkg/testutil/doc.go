// Package testutil provides utilities for testing savecrypt components.
//
// Key components:
//   - MockNotifier: testify mock of types.Notifier
//   - MockEngine: testify mock of types.Engine that records each job
//   - SaveDir: a temporary directory populated with save files
//
// Usage guidelines:
//   - Prefer the mocks over spawning real processes or prompting
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
