// Package buildinfo contains build information.
package buildinfo

// Version identifies the version of lace. On a release branch it is identical
// to the tag of the release; otherwise it carries a -dev suffix.
const Version = "0.1.0-dev"
