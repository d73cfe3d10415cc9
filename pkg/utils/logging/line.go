package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// TimeFormat is the timestamp layout of LineHandler
const TimeFormat = "2006-01-02 15:04:05,000"

// LineHandler writes records as "[timestamp] message key=value ..."
type LineHandler struct {
	mu      *sync.Mutex
	w       io.Writer
	level   slog.Leveler
	replace func(groups []string, a slog.Attr) slog.Attr
	prefix  string // pre-rendered attrs from WithAttrs
	groups  []string
}

var _ slog.Handler = (*LineHandler)(nil)

// NewLineHandler creates a LineHandler. Level and ReplaceAttr of opts are honored.
func NewLineHandler(w io.Writer, opts *slog.HandlerOptions) *LineHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	var level slog.Leveler = slog.LevelInfo
	if opts.Level != nil {
		level = opts.Level
	}

	return &LineHandler{
		mu:      &sync.Mutex{},
		w:       w,
		level:   level,
		replace: opts.ReplaceAttr,
	}
}

func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.WriteString(r.Time.Format(TimeFormat))
	buf.WriteString("] ")
	buf.WriteString(r.Message)
	buf.WriteString(h.prefix)

	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&buf, h.groups, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *LineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var buf bytes.Buffer
	for _, a := range attrs {
		h.appendAttr(&buf, h.groups, a)
	}

	clone := *h
	clone.prefix = h.prefix + buf.String()
	return &clone
}

func (h *LineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func (h *LineHandler) appendAttr(buf *bytes.Buffer, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		sub := groups
		if a.Key != "" {
			sub = append(append([]string{}, groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(buf, sub, ga)
		}
		return
	}

	if h.replace != nil {
		a = h.replace(groups, a)
		a.Value = a.Value.Resolve()
	}
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	fmt.Fprintf(buf, " %s=%s", key, quote(a.Value.String()))
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
