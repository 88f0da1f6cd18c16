package term

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// InterruptListener watches for SIGINT and SIGTERM. On the first signal
// it closes its abort channel, performs the guarded device release, and
// terminates the process. Because the release it is handed is
// idempotent, it cannot race with a normal-exit release.
type InterruptListener struct {
	release func()
	logger  *zap.Logger
	exit    func(int)
	sigs    chan os.Signal
	abort   chan struct{}
}

// NewInterruptListener creates a listener that invokes release before
// exiting.
//
// Precondition: release and logger must be non-nil.
func NewInterruptListener(release func(), logger *zap.Logger) *InterruptListener {
	if release == nil || logger == nil {
		panic("term: NewInterruptListener called with nil release or logger")
	}
	return &InterruptListener{
		release: release,
		logger:  logger,
		exit:    os.Exit,
		sigs:    make(chan os.Signal, 1),
		abort:   make(chan struct{}),
	}
}

// Abort returns the channel closed when a termination signal arrives.
// The game loop selects on this channel at its blocking point.
func (l *InterruptListener) Abort() <-chan struct{} {
	return l.abort
}

// Start registers for signals and launches the listener goroutine.
func (l *InterruptListener) Start() {
	signal.Notify(l.sigs, syscall.SIGINT, syscall.SIGTERM)
	go l.run()
}

// Stop unregisters the signal handler and ends the listener goroutine.
// Called on the normal exit path once the game is over.
func (l *InterruptListener) Stop() {
	signal.Stop(l.sigs)
	close(l.sigs)
}

func (l *InterruptListener) run() {
	sig, ok := <-l.sigs
	if !ok {
		return
	}
	l.logger.Info("received signal, aborting game",
		zap.String("signal", sig.String()),
	)
	close(l.abort)
	l.release()
	l.exit(0)
}
