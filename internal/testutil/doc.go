// Package testutil provides deterministic fixtures shared by tests:
// the published test key, canned manifests, and fixed reference times.
// Nothing here is for production use; production keys come from the Key
// Server, never from code.
package testutil
