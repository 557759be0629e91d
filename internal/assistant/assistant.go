// Package assistant implements the health-triage response engine: an
// ordered rule matcher over a fixed intent table, plus an orchestrator
// that can delegate reply generation to an AI client and falls back to
// the matcher whenever the AI path is disabled, fails, or returns
// nothing usable.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/triagelabs/healthbot/internal/llm"
)

const (
	// DefaultName is the assistant identity quoted in canned replies
	// and in the AI system directive.
	DefaultName = "HealthBot"

	// DefaultAITimeout bounds a single AI reply attempt.
	DefaultAITimeout = 10 * time.Second
)

// Config controls a single Assistant. The zero value is a working
// rule-only engine named DefaultName.
type Config struct {
	// Name is the assistant identity. Empty means DefaultName.
	Name string

	// Client generates AI replies. A nil Client disables the AI path
	// entirely; every call then resolves through the rule matcher.
	Client llm.Client

	// UseAIByDefault makes calls without an explicit override attempt
	// the AI path first. It has no effect without a working Client.
	UseAIByDefault bool

	// AITimeout bounds each AI attempt. Zero or negative means
	// DefaultAITimeout.
	AITimeout time.Duration
}

// Result is the outcome of one Respond call. UsedAI reports which path
// produced Reply for this call and nothing else; concurrent calls each
// get their own Result.
type Result struct {
	Reply  string
	UsedAI bool
}

// Assistant routes messages to the AI client or the rule matcher.
// It is immutable after construction apart from the deprecated
// last-used-AI mirror and is safe for concurrent use.
type Assistant struct {
	name      string
	matcher   *Matcher
	client    llm.Client
	useAI     bool
	aiTimeout time.Duration
	system    string

	lastUsedAI atomic.Bool
}

// New builds an Assistant from cfg, filling in defaults for unset
// fields.
func New(cfg Config) *Assistant {
	name := cfg.Name
	if name == "" {
		name = DefaultName
	}
	client := cfg.Client
	if client == nil {
		client = llm.Unavailable()
	}
	timeout := cfg.AITimeout
	if timeout <= 0 {
		timeout = DefaultAITimeout
	}
	return &Assistant{
		name:      name,
		matcher:   NewMatcher(name),
		client:    client,
		useAI:     cfg.UseAIByDefault,
		aiTimeout: timeout,
		system:    fmt.Sprintf(systemPromptFormat, name),
	}
}

// Name returns the assistant identity.
func (a *Assistant) Name() string { return a.name }

// AIEnabled reports whether calls without an override attempt the AI
// path.
func (a *Assistant) AIEnabled() bool { return a.useAI }

// Respond produces a reply for message. A non-nil useAI overrides the
// configured AI default for this call only. Respond never fails: empty
// input gets the retry prompt directly, and any AI error or unusable AI
// reply is logged and absorbed by falling back to the rule matcher.
func (a *Assistant) Respond(ctx context.Context, message string, useAI *bool) Result {
	if message == "" {
		return a.finish(Result{Reply: a.matcher.Reply("")})
	}

	enabled := a.useAI
	if useAI != nil {
		enabled = *useAI
	}
	if enabled {
		if reply, ok := a.tryAI(ctx, message); ok {
			return a.finish(Result{Reply: reply, UsedAI: true})
		}
	}
	return a.finish(Result{Reply: a.matcher.Reply(message)})
}

// tryAI makes one bounded attempt at an AI reply. It reports ok=false
// on error or on a blank reply; errors are logged here, never returned.
func (a *Assistant) tryAI(ctx context.Context, message string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, a.aiTimeout)
	defer cancel()

	reply, err := a.client.GenerateReply(ctx, a.system, message)
	if err != nil {
		slog.Warn("AI reply failed, using rule-based fallback", "error", err)
		return "", false
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		slog.Warn("AI returned an empty reply, using rule-based fallback")
		return "", false
	}
	return reply, true
}

func (a *Assistant) finish(res Result) Result {
	a.lastUsedAI.Store(res.UsedAI)
	return res
}

// LastUsedAI reports whether the most recently completed call took the
// AI path.
//
// Deprecated: read Result.UsedAI instead. This mirror only exists for
// the legacy call-then-inspect access pattern and is not meaningful
// when calls interleave.
func (a *Assistant) LastUsedAI() bool {
	return a.lastUsedAI.Load()
}
