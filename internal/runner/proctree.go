package runner

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/hashicorp/go-hclog"
)

// KillTree terminates the process rooted at pid together with all of its
// descendants. The verifier spawns the solver as a child process, so killing
// only the direct child would leave the solver running. Descendants are
// enumerated from /proc and killed deepest-first, then the root, then the
// root's process group as a backstop for children that raced the enumeration.
func KillTree(pid int, logger hclog.Logger) {
	children := childrenByParent()

	var subtree []int
	collectDescendants(pid, children, &subtree)

	for i := len(subtree) - 1; i >= 0; i-- {
		if err := syscall.Kill(subtree[i], syscall.SIGKILL); err != nil && err != syscall.ESRCH {
			logger.Debug("failed to kill descendant", "pid", subtree[i], "error", err)
		}
	}

	if err := syscall.Kill(pid, syscall.SIGKILL); err != nil && err != syscall.ESRCH {
		logger.Debug("failed to kill process", "pid", pid, "error", err)
	}

	// The child was started with Setpgid, so its group id equals its pid.
	if err := syscall.Kill(-pid, syscall.SIGKILL); err != nil && err != syscall.ESRCH {
		logger.Debug("failed to kill process group", "pgid", pid, "error", err)
	}
}

// collectDescendants appends every descendant of pid to out in BFS order.
func collectDescendants(pid int, children map[int][]int, out *[]int) {
	for _, child := range children[pid] {
		*out = append(*out, child)
		collectDescendants(child, children, out)
	}
}

// childrenByParent builds a parent-pid to child-pids map from /proc.
func childrenByParent() map[int][]int {
	children := make(map[int][]int)

	entries, err := os.ReadDir("/proc")
	if err != nil {
		return children
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		ppid, ok := parentPID(pid)
		if !ok {
			continue
		}
		children[ppid] = append(children[ppid], pid)
	}

	return children
}

// parentPID reads the parent pid of pid from /proc/<pid>/stat. The comm
// field may contain spaces and parentheses, so fields are taken after the
// last closing parenthesis.
func parentPID(pid int) (int, bool) {
	data, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "stat"))
	if err != nil {
		return 0, false
	}

	stat := string(data)
	idx := strings.LastIndexByte(stat, ')')
	if idx < 0 || idx+2 > len(stat) {
		return 0, false
	}

	fields := strings.Fields(stat[idx+1:])
	if len(fields) < 2 {
		return 0, false
	}

	ppid, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}
	return ppid, true
}
