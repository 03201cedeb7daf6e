package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

// levelColor maps a record level to its display color.
func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level >= slog.LevelInfo:
		return colorGreen
	case level >= slog.LevelDebug:
		return colorBlue
	default:
		return colorCyan
	}
}

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
	group string
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeResolved(buf, slog.Time(slog.TimeKey, r.Time))
	}

	level := strings.ToUpper(Level(r.Level).String())
	fmt.Fprintf(buf, "%s%s%s ", levelColor(r.Level), level, colorReset)

	buf.WriteString(r.Message)

	for _, attr := range h.attrs {
		h.writeAttr(buf, attr)
	}

	r.Attrs(func(attr slog.Attr) bool {
		h.writeAttr(buf, attr)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &clone
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		name = clone.group + "." + name
	}

	clone.group = name

	return &clone
}

// writeResolved runs the handler's ReplaceAttr before writing, which is how
// the configured time layout is applied.
func (h *prettyTextHandler) writeResolved(buf *bytes.Buffer, attr slog.Attr) {
	if h.opts.ReplaceAttr != nil {
		attr = h.opts.ReplaceAttr(nil, attr)
	}

	if attr.Equal(slog.Attr{}) {
		return
	}

	fmt.Fprintf(buf, "%s%s%s ", colorGray, attr.Value.String(), colorReset)
}

// writeAttr writes one key=value pair, expanding groups with a dotted
// prefix.
func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()

	if attr.Value.Kind() == slog.KindGroup {
		for _, member := range attr.Value.Group() {
			if attr.Key != "" {
				member.Key = attr.Key + "." + member.Key
			}

			h.writeAttr(buf, member)
		}

		return
	}

	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}

	fmt.Fprintf(buf, " %s%s=%s%s",
		colorGray, key, colorReset, attr.Value.String())
}
