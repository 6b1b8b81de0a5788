// Package lib groups modules that do not fit strictly into other layers.
//
// It contains shared utilities, the pagination policy, background job
// processing (using Redis/Asynq), and the email client (Resend).
package lib
