/*
Package dryrun provides stand-ins for side-effecting calls.

Each stand-in prints a labelled block describing the call it received instead
of (or before) performing it. They are meant for "what would happen" runs of
tools that would otherwise modify a remote service.

  - Wrapper prints the call and then delegates to the real function.
  - Printer only prints; it stands in for calls without a result.
  - Counter prints and returns a synthetic Result whose ID is
    "<prefix> <n>", with n counting up from 0 for each Counter.

Positional arguments are printed first, followed by keyword arguments given as
KV values, each on its own indented line. None of the stand-ins are safe for
concurrent use.
*/
package dryrun
