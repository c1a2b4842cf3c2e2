// internal/version/version.go
package version

// Version is the released tool version. Bump on tagged releases.
const Version = "0.1.0"
