// Package cli provides the interactive taskbalance command-line client.
//
// It wires configuration, the local metadata store, the gRPC transport and
// the client services into a read-eval-print loop. On start the stored
// session is resumed (if any), the task list and today's balance record are
// fetched, and the prompt is shown.
//
// Key features:
//   - Register / Login / Logout
//   - Task list with filters and counters
//   - Add / edit / delete tasks, toggle completion and star
//   - Today's life balance: hours per category, breakdown and score
//   - File attachments for tasks (upload / list / download)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
