// Package commands contains the operations that change an editing session or the
// Orders service. Every command is built through its constructor, which checks the
// inputs that do not depend on session state; handlers then apply the domain
// rules under the session lock.
package commands
