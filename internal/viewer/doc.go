// Package viewer builds links into the browser-based model viewer.
package viewer
