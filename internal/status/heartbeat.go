package status

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/truncate"
	"golang.org/x/term"

	"github.com/tessro/sift/internal/logging"
)

// Heartbeat periodically writes the board's latest label to stderr so a
// long silent stretch still shows the run is alive. On a TTY the line is
// rewritten in place and trimmed to the terminal width; on a plain pipe
// each tick appends one line.
type Heartbeat struct {
	board    *Board
	interval time.Duration
	out      io.Writer
	tty      bool
	width    func() int

	mu     sync.Mutex
	stopCh chan struct{}
}

// NewHeartbeat creates a heartbeat over board writing to stderr.
// An interval of zero or less disables it: Start becomes a no-op.
func NewHeartbeat(board *Board, interval time.Duration) *Heartbeat {
	return &Heartbeat{
		board:    board,
		interval: interval,
		out:      os.Stderr,
		tty:      isatty.IsTerminal(os.Stderr.Fd()),
		width:    stderrWidth,
	}
}

func stderrWidth() int {
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// Start launches the ticker goroutine. Safe to call once per Heartbeat.
func (h *Heartbeat) Start() {
	if h.interval <= 0 {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopCh != nil {
		return
	}
	h.stopCh = make(chan struct{})

	go h.run(h.stopCh)
}

// Stop signals the goroutine to exit. It does not wait for it: the
// heartbeat only performs best-effort diagnostic output, so process exit
// must never block on it.
func (h *Heartbeat) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopCh == nil {
		return
	}
	select {
	case <-h.stopCh:
	default:
		close(h.stopCh)
	}
}

func (h *Heartbeat) run(stopCh chan struct{}) {
	defer logging.LogPanic("heartbeat", nil)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			h.emit()
		}
	}
}

// emit writes one status line. Nothing is written before the first label
// is published.
func (h *Heartbeat) emit() {
	label := h.board.Label()
	if label == "" {
		return
	}
	if h.tty {
		fmt.Fprint(h.out, "\r\x1b[2K"+truncate.String(label, uint(h.width())))
		return
	}
	fmt.Fprintln(h.out, label)
}
