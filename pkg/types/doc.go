// Package types defines the todo entry and session state models, the runtime
// configuration, and the standard errors shared by the todo packages.
package types
