// Package gitapi provides a read-only HTTP client for the GitHub gists API.
//
// The client fetches a single page of a user's public gists, optionally
// bounded by a "since" timestamp that the server compares against each
// gist's updated_at (inclusive). Requests are unauthenticated; callers are
// subject to GitHub's anonymous rate limit.
//
// Error behavior:
//
//   - Non-2xx responses produce a *StatusError carrying the status code,
//     status text, request URL, and response body.
//   - A malformed JSON body on a successful response produces a wrapped
//     decode error.
//   - Transport failures (DNS, refused connections) surface as wrapped
//     request errors.
//
// Known limitation: when more gists exist beyond the since threshold than
// fit in one page, no follow-up request is made; the caller sees a partial
// page.
package gitapi
