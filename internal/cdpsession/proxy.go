// Package cdpsession implements the CDP session proxy: a facade
// that narrows a multiplexed CDP connection down to a single attached
// target, so Thread code never has to think about session IDs.
//
// An obvious shape for this is a generated wrapper struct embedding a CDP
// client and a session ID, forwarding each method, for languages without
// dynamic dispatch. Go has a more idiomatic seam already used by every
// generated command in pkg/devtools: each command's Do(ctx) reads its
// session ID out of the context (devtools.SessionIDFromContext). The proxy
// here is therefore just a context carrying that tag, plus the
// session-filtered event subscription; every other "method" is simply a
// generated command called with Proxy.Context() instead of the bare
// session context.
package cdpsession

import (
	"context"

	"github.com/daabr/wasmdbg/pkg/devtools"
)

// Proxy narrows ctx to a single CDP session ID. The empty string names the
// default (un-multiplexed) session: the main page before any worker
// attaches.
type Proxy struct {
	ctx       context.Context
	sessionID string
}

// New returns a Proxy for sessionID, derived from the session-wide ctx
// (the one returned by devtools.NewContext).
func New(ctx context.Context, sessionID string) *Proxy {
	return &Proxy{ctx: devtools.WithSessionID(ctx, sessionID), sessionID: sessionID}
}

// Context returns the session-tagged context.Context: every generated
// command's Do/Start method, called with this context, automatically
// addresses this proxy's target.
func (p *Proxy) Context() context.Context { return p.ctx }

// SessionID returns the CDP session ID this proxy narrows to ("" for the
// default session).
func (p *Proxy) SessionID() string { return p.sessionID }

// SubscribeEvent subscribes to a CDP event, filtered to this proxy's
// session; events addressed to other attached targets never reach the
// returned channel.
func (p *Proxy) SubscribeEvent(name string) (chan *devtools.Message, error) {
	return devtools.SubscribeEventForSession(p.ctx, name)
}
