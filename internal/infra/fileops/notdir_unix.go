//go:build !windows

package fileops

import "syscall"

// syscallNotDir is returned when a path component is a regular file.
var syscallNotDir error = syscall.ENOTDIR
