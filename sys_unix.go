//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build darwin dragonfly freebsd linux netbsd openbsd solaris

package recscan

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func fileSize(file *os.File) (int64, error) {
	stat := unix.Stat_t{}
	if err := unix.Fstat(int(file.Fd()), &stat); err != nil {
		return 0, fmt.Errorf("can't read file stats: %w", err)
	}
	return stat.Size, nil
}
