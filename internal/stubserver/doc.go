// Package stubserver implements an in-memory auth API serving the
// sessions/login_with_email, sessions/resend_confirmation and
// sessions/sign_up_email endpoints.
//
// It is used by integration tests of the client and by cmd/authstub for local
// development. Accounts live only in memory and are lost on restart.
package stubserver
