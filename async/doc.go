// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package async provides a minimal write-once asynchronous result together with the join
primitives needed to fan work out and wait on all of it.

A *Result completes exactly once, either successfully or with an error.  Joining several
results produces a new result that completes only after every input has completed.  When one
or more inputs fail, the joined error carries every failure, not merely the first.  Use Errors
to enumerate them.

A nil *Result is always treated as an already completed success.
*/
package async
