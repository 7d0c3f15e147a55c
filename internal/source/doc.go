// Package source retrieves README documents from GitHub or the local disk.
//
// GitHub retrieval is two steps: the repository metadata endpoint gives
// the default branch (falling back to "main"), then the raw content host is
// asked for each README candidate in turn until one exists. Transient
// failures are retried with exponential backoff; a missing repository or
// README is reported with its own sentinel so callers can show a distinct
// message.
package source
