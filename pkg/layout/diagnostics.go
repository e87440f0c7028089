package layout

import (
	"fmt"

	"go.uber.org/zap"

	"radiant/pkg/html"
)

// DiagnosticLevel classifies layout diagnostics.
type DiagnosticLevel int

const (
	LevelWarn DiagnosticLevel = iota
	LevelError
)

// Diagnostic is a structured record of a recoverable layout problem:
// a bad grid placement, a clamped negative size, a skipped nested
// document. Layout never aborts; it degrades and records one of these.
type Diagnostic struct {
	Level   DiagnosticLevel
	Code    string
	Message string
	Node    *html.Node
}

// Diagnostics returns the records accumulated by the last Layout call.
func (le *LayoutEngine) Diagnostics() []Diagnostic {
	return le.diags
}

// warnf records a warning diagnostic. Suppressed during measurement:
// a ComputeSize probe of a subtree would otherwise report the same
// problem once per cache miss.
func (le *LayoutEngine) warnf(node *html.Node, code, format string, args ...interface{}) {
	if le.measureDepth > 0 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	le.diags = append(le.diags, Diagnostic{Level: LevelWarn, Code: code, Message: msg, Node: node})
	le.logger.Warn(msg, zap.String("code", code), zap.String("node", nodeName(node)))
}

// errorf records an error diagnostic for an invariant violation that was
// clamped or otherwise papered over so the surrounding layout survives.
func (le *LayoutEngine) errorf(node *html.Node, code, format string, args ...interface{}) {
	if le.measureDepth > 0 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	le.diags = append(le.diags, Diagnostic{Level: LevelError, Code: code, Message: msg, Node: node})
	le.logger.Error(msg, zap.String("code", code), zap.String("node", nodeName(node)))
}

func nodeName(node *html.Node) string {
	if node == nil {
		return ""
	}
	if node.Type == html.TextNode {
		return "#text"
	}
	return node.TagName
}
