// Package engine runs the external transform tool that does the actual
// encryption and decryption of save files.
//
// The tool is launched as a subordinate process and waited on until it
// exits. Its error stream is captured whole; nothing is streamed while it
// runs, and there is no timeout.
package engine
