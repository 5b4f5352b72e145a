// Package process finds running applications by executable name.
package process

import (
	"fmt"
	"slices"

	"github.com/mitchellh/go-ps"
)

// Lister returns the running processes. It matches ps.Processes.
type Lister func() ([]ps.Process, error)

// FindByName returns the PIDs of processes whose executable matches any of
// names.
func FindByName(names ...string) ([]int, error) {
	return FindByNameWith(ps.Processes, names...)
}

// FindByNameWith is FindByName over a custom process list.
func FindByNameWith(list Lister, names ...string) ([]int, error) {
	processes, err := list()
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	var pids []int
	for _, p := range processes {
		if slices.Contains(names, p.Executable()) {
			pids = append(pids, p.Pid())
		}
	}

	return pids, nil
}
