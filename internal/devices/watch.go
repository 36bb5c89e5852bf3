package devices

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/pilebones/go-udev/netlink"

	"garmindev/internal/logging"
)

// garminVendorID is the USB vendor ID assigned to Garmin International.
const garminVendorID = "091e"

// Event is one attach or detach notification for a Garmin USB device.
type Event struct {
	Action  string
	Node    string
	Product string
}

// Watcher listens for udev netlink events and reports Garmin devices
// being plugged or unplugged, so deploys can target a watch the moment
// it shows up.
type Watcher struct {
	logger  *slog.Logger
	handler func(Event)

	mu      sync.Mutex
	conn    *netlink.UEventConn
	quit    chan struct{}
	running bool
}

// NewWatcher creates a watcher that invokes handler for every Garmin
// USB event.
func NewWatcher(logger *slog.Logger, handler func(Event)) *Watcher {
	return &Watcher{
		logger:  logging.NewComponentLogger(logger, "device-watch"),
		handler: handler,
	}
}

// Start begins listening for udev netlink events. A failure to connect
// is non-fatal: the watcher logs and stays idle, matching environments
// without udev access.
func (w *Watcher) Start(ctx context.Context) error {
	if w == nil {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		w.logger.Warn("failed to connect to netlink socket; device watch unavailable",
			logging.Error(err),
		)
		return nil
	}

	w.conn = conn
	w.quit = make(chan struct{})
	w.running = true

	quit := w.quit
	go w.watchLoop(ctx, quit)

	w.logger.Info("device watch started")
	return nil
}

// Stop shuts down the watcher.
func (w *Watcher) Stop() {
	if w == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	if w.quit != nil {
		close(w.quit)
		w.quit = nil
	}
	if w.conn != nil {
		_ = w.conn.Close()
		w.conn = nil
	}
	w.running = false

	w.logger.Info("device watch stopped")
}

// Running reports whether the watcher is active.
func (w *Watcher) Running() bool {
	if w == nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) watchLoop(ctx context.Context, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)

	w.mu.Lock()
	conn := w.conn
	w.mu.Unlock()
	if conn == nil {
		return
	}

	monitorQuit := conn.Monitor(queue, errs, w.buildMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			w.handleEvent(uevent)
		case err := <-errs:
			w.logger.Warn("device watch error", logging.Error(err))
		}
	}
}

// buildMatcher matches USB add/remove events from Garmin hardware:
// SUBSYSTEM=usb, ID_VENDOR_ID=091e, ACTION=add|remove.
func (w *Watcher) buildMatcher() netlink.Matcher {
	action := "add|remove"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM":    "usb",
			"ID_VENDOR_ID": garminVendorID,
		},
	})
	return rules
}

func (w *Watcher) handleEvent(uevent netlink.UEvent) {
	node := uevent.Env["DEVNAME"]
	if node == "" {
		devpath := uevent.Env["DEVPATH"]
		if devpath == "" {
			w.logger.Debug("ignoring event without device node",
				logging.String("action", string(uevent.Action)),
			)
			return
		}
		parts := strings.Split(devpath, "/")
		node = "/dev/" + parts[len(parts)-1]
	}

	evt := Event{
		Action:  string(uevent.Action),
		Node:    node,
		Product: uevent.Env["ID_MODEL"],
	}

	w.logger.Info("garmin device event",
		logging.String("action", evt.Action),
		logging.String("node", evt.Node),
		logging.String("product", evt.Product),
	)

	if w.handler != nil {
		w.handler(evt)
	}
}
