package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Logger = *slog.Logger

// Options configures New.
type Options struct {
	// Writer receives text records. If it is nil, there is no text output.
	Writer io.Writer
	// Level is the minimum level of text records. The default is info.
	Level slog.Leveler
	// Journal sends records to the systemd journal as well.
	Journal bool
}

// New creates a logger that fans records out to every configured handler.
// If no handler can be created, records go to stderr.
func New(opts Options) Logger {
	var handlers []slog.Handler

	// local
	var textHandler slog.Handler
	if opts.Writer != nil {
		textHandler = slog.NewTextHandler(
			opts.Writer,
			&slog.HandlerOptions{
				Level: opts.Level,
			},
		)
		handlers = append(handlers, textHandler)
	}

	// systemd journal
	if opts.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			if textHandler != nil {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
				record.Add("error", err)
				_ = textHandler.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	if len(handlers) == 0 {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: opts.Level,
		}))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// IsSystemdService reports whether the process runs in the cgroup of a
// systemd service.
func IsSystemdService() bool {
	cgroupPath, err := getCgroupPath()
	if err != nil {
		return false
	}
	return strings.HasSuffix(path.Dir(cgroupPath), ".service")
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}

func getCgroupPath() (string, error) {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return "", err
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) >= 3 {
		return parts[2], nil
	}
	return "", nil
}

// ParseLevel parses a level name: debug, info, warn, or error. Unknown names
// are info.
func ParseLevel(name string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}
