//go:build windows

package fileops

import "syscall"

var syscallNotDir error = syscall.ERROR_PATH_NOT_FOUND
