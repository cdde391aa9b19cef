package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// RemindSyncCmd recomputes reminder schedules from the current trip
// collection. The same refresh also runs implicitly after every mutating
// command via the repository subscription.
type RemindSyncCmd struct{}

func (c *RemindSyncCmd) Run(ctx *Context) error {
	ctx.Reminders.Refresh(ctx.Repo.Trips())
	fmt.Printf("%d reminders scheduled\n", ctx.Reminders.Pending())
	return nil
}

// RemindWatchCmd keeps the process alive so armed reminder timers can fire
// and deliver desktop notifications. Pending schedules are cancelled on
// interrupt so stale notifications never outlive the trips they reference.
type RemindWatchCmd struct{}

func (c *RemindWatchCmd) Run(ctx *Context) error {
	ctx.Reminders.Refresh(ctx.Repo.Trips())
	fmt.Printf("Watching %d reminders. Press Ctrl+C to stop.\n", ctx.Reminders.Pending())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	ctx.Reminders.Close()
	fmt.Println("\nStopped. Pending reminders cancelled.")
	return nil
}
