// Package paths provides centralized path handling for savecrypt.
// The credential file and the transform engine live next to the program
// itself, while configuration and logs follow the XDG Base Directory
// specification.
package paths
