package device

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Info describes the properties of a device.
type Info struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Workers     int    `json:"workers"`
	LogicalCPUs int    `json:"logical_cpus"`
	Batches     int    `json:"batches"`
	MemoryLimit int64  `json:"memory_limit"`
	MemoryInUse int64  `json:"memory_in_use"`
	GoVersion   string `json:"go_version"`
	Platform    string `json:"platform"`
}

// Enumerate queries the properties of the given devices concurrently and
// returns them in argument order. It is purely informational and does not
// interact with running kernels.
func Enumerate(ctx context.Context, devs ...Device) ([]Info, error) {
	infos := make([]Info, len(devs))
	g, ctx := errgroup.WithContext(ctx)
	for i, dev := range devs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			infos[i] = dev.Info()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}
