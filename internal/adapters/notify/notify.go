// Package notify holds the notice sinks used by the CLI.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/bnema/repara-cli/internal/adapters/render/catalog"
	"github.com/bnema/repara-cli/internal/domain"
	"github.com/bnema/repara-cli/internal/ports"
	"go.uber.org/zap"
)

// Writer prints each notice on its own line.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Notify(notice domain.Notice) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintln(w.out, catalog.RenderNotice(notice))
}

// Log records notices through zap, mapping notice levels to log levels.
type Log struct {
	Logger *zap.Logger
}

func (l Log) Notify(notice domain.Notice) {
	if l.Logger == nil {
		return
	}

	fields := []zap.Field{zap.String("level", string(notice.Level))}
	if notice.Action != "" {
		fields = append(fields, zap.String("action", string(notice.Action)))
	}

	switch notice.Level {
	case domain.NoticeError:
		l.Logger.Error(notice.Message, fields...)
	case domain.NoticeWarning:
		l.Logger.Warn(notice.Message, fields...)
	default:
		l.Logger.Info(notice.Message, fields...)
	}
}

// Channel hands notices to a consumer loop. Notify never blocks: when the
// buffer is full the notice is dropped.
type Channel struct {
	ch chan domain.Notice
}

func NewChannel(size int) *Channel {
	if size <= 0 {
		size = 16
	}
	return &Channel{ch: make(chan domain.Notice, size)}
}

func (c *Channel) Notify(notice domain.Notice) {
	select {
	case c.ch <- notice:
	default:
	}
}

func (c *Channel) C() <-chan domain.Notice {
	return c.ch
}

// Multi fans a notice out to every sink in order.
type Multi []ports.Notifier

func (m Multi) Notify(notice domain.Notice) {
	for _, n := range m {
		if n != nil {
			n.Notify(notice)
		}
	}
}

var (
	_ ports.Notifier = (*Writer)(nil)
	_ ports.Notifier = Log{}
	_ ports.Notifier = (*Channel)(nil)
	_ ports.Notifier = Multi(nil)
)
