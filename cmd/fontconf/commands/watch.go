package commands

import (
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"go.trai.ch/fontconf/internal/adapters/xdg"
	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	var lockPath string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the configuration up to date until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if lockPath == "" {
				path, err := xdg.RuntimeFile(domain.WatchLockFile)
				if err != nil {
					return err
				}
				lockPath = path
			}

			lock := flock.New(lockPath)
			ok, err := lock.TryLock()
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to acquire watch lock"), "path", lockPath)
			}
			if !ok {
				return zerr.With(zerr.Wrap(domain.ErrWatchLocked, "cannot start watch"), "path", lockPath)
			}
			defer func() {
				_ = lock.Unlock()
			}()

			return c.app.Watch(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&lockPath, "lock-file", "", "Path of the lock file that keeps a single watcher running")

	return cmd
}
