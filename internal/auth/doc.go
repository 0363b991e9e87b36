// Package auth implements the sign-in flow: credentials, a one-time code
// delivered out of band, and verification producing a session User.
//
// # Steps
//
// The Machine is in StepCredentials or StepVerification. Mode (signin or
// signup) and Method (email or phone) can be switched while collecting
// credentials. A pending counter backs State().Loading while a step waits out
// its simulated latency.
//
// # Codes
//
// Codes are issued, checked and revoked through a CodeIssuer. LocalIssuer
// keeps them in process memory; RedisIssuer stores keyed digests of them in
// Redis with a TTL.
// Either delivers the code through a Notifier.
//
// # Errors
//
// Validation failures are sentinel errors (ErrMissingPassword and friends).
// The most recent one is exposed as State().Err until the next attempt.
// ErrWrongStep reports an operation invoked in the wrong step and is never
// stored.
package auth
