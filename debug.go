package planes

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// globalDebug is set by Display.SetDebugMode and enables the tree checks
// below.
var globalDebug bool

var logger = slog.Default().With("pkg", "planes")

// SetLogger replaces the package logger. A nil logger restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default().With("pkg", "planes")
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return logger
}

// frameCounters accumulates per-frame render metrics.
type frameCounters struct {
	composites int
}

var renderStats frameCounters

// debugLog prints per-frame render stats.
func (d *Display) debugLog(stats FrameStats) {
	if !d.debug {
		return
	}
	d.logger.Debug("frame",
		"composites", stats.Composites,
		"presented", stats.Presented,
		"duration", stats.Duration)
}

// debugLogDestroyed reports a tree operation on a destroyed plane. The
// operation itself still fails with ErrDestroyed.
func debugLogDestroyed(op string, p, child *Plane) {
	if !globalDebug {
		return
	}
	if child == nil {
		logger.Error("operation on destroyed plane", "op", op, "plane", p.Name)
		return
	}
	logger.Error("operation on destroyed plane", "op", op, "parent", p.Name, "plane", child.Name)
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
func debugCheckTreeDepth(p *Plane) {
	depth := 0
	for a := p; a != nil; a = a.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold", "depth", depth, "threshold", debugMaxTreeDepth, "plane", p.Name)
	}
}

const debugMaxChildCount = 1000

// debugCheckChildCount warns if a plane has more than 1000 children.
func debugCheckChildCount(p *Plane) {
	if len(p.children) > debugMaxChildCount {
		logger.Warn("child count exceeds threshold", "plane", p.Name, "children", len(p.children), "threshold", debugMaxChildCount)
	}
}

// DumpTree writes an indented listing of p and its descendants, one plane
// per line, topmost sibling last.
func DumpTree(w io.Writer, p *Plane) error {
	return dumpTree(w, p, 0)
}

func dumpTree(w io.Writer, p *Plane, depth int) error {
	flags := ""
	if p.Draggable {
		flags += " drag"
	}
	if p.Grab {
		flags += " grab"
	}
	if p.Highlight {
		flags += " highlight"
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", depth), p, flags); err != nil {
		return err
	}
	for _, c := range p.children {
		if err := dumpTree(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
