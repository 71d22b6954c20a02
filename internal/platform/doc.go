// Package platform contains OS integration glue: default folders, directory
// creation, launching the default browser, and the shared HTTP redirect
// policy.
package platform
