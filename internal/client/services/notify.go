package services

import (
	"fmt"
	"io"
	"sync"
)

type Level int

const (
	LevelInfo Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "info"
}

// Notifier shows short user-facing messages.
type Notifier interface {
	Notify(level Level, msg string)
}

// WriterNotifier prints notifications as single lines to w.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(level Level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if level == LevelError {
		fmt.Fprintf(n.w, "! %s\n", msg)
		return
	}
	fmt.Fprintf(n.w, "* %s\n", msg)
}

type NopNotifier struct{}

func (NopNotifier) Notify(Level, string) {}
