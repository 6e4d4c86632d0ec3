//go:build linux

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF // TCSAFLUSH: drain output, discard pending input
)
