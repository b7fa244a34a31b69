package thread

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/daabr/wasmdbg/pkg/devtools"
	"github.com/daabr/wasmdbg/pkg/devtools/console"
)

// WatchConsole enables the Console domain on this thread's session and
// starts relaying every `Console.messageAdded` event to the registered
// Output callback: the debuggee's stdout/stderr, forwarded as-is to
// whichever front end is attached.
func (t *Thread) WatchConsole(ctx context.Context) error {
	if err := console.NewEnable().Do(ctx); err != nil {
		return fmt.Errorf("%w: Console.enable: %v", ErrCDPTransport, err)
	}
	events, err := t.Proxy.SubscribeEvent("Console.messageAdded")
	if err != nil {
		return fmt.Errorf("%w: subscribing to Console.messageAdded: %v", ErrCDPTransport, err)
	}
	go t.relayConsole(events)
	return nil
}

func (t *Thread) relayConsole(events chan *devtools.Message) {
	for msg := range events {
		var ev console.MessageAdded
		if err := json.Unmarshal(msg.Params, &ev); err != nil {
			continue
		}
		if t.onOutput != nil {
			t.onOutput(ev.Message.Text)
		}
	}
}
