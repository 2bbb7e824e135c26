package scatter

import (
	"sort"
	"strconv"

	"github.com/gogpu/plot/internal/reconcile"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/trace"
)

// traceState is what survives of one trace between renders.
type traceState struct {
	group   *scene.Node
	markers reconcile.Binding
	texts   reconcile.Binding
	// seen is the render generation that last used the entry.
	seen uint64
}

// RenderState maps the traces of every subplot a Renderer has drawn to
// their retained nodes. Traces are identified by UID, or by position
// when they have none.
type RenderState struct {
	traces map[string]*traceState
	gen    uint64
}

func newRenderState() *RenderState {
	return &RenderState{traces: make(map[string]*traceState)}
}

func traceKey(plotID string, i int, ct trace.CalcTrace) string {
	if ct.Trace != nil && ct.Trace.UID != "" {
		return plotID + "/" + ct.Trace.UID
	}
	return positionalKey(plotID, i)
}

func positionalKey(plotID string, i int) string {
	return plotID + "/#" + strconv.Itoa(i)
}

// uniqueKey suffixes key until used does not hold it. Only a UID that
// looks like a positional key can collide.
func uniqueKey(key string, used map[string]bool) string {
	for used[key] {
		key += "'"
	}
	return key
}

// begin starts a render generation.
func (s *RenderState) begin() uint64 {
	s.gen++
	return s.gen
}

// ensure returns the state of key, creating its trace group in layer.
func (s *RenderState) ensure(key string, layer *scene.Node) *traceState {
	st := s.traces[key]
	if st == nil || st.group.Parent() != layer {
		st = &traceState{
			group:   layer.Append("g", "trace", "scatter"),
			markers: reconcile.Binding{},
			texts:   reconcile.Binding{},
		}
		st.group.SetStyle("stroke-miterlimit", "2")
		s.traces[key] = st
	}
	st.seen = s.gen
	return st
}

// prune removes the groups of traces of layer not seen in generation
// gen, and forgets groups detached by someone else.
func (s *RenderState) prune(layer *scene.Node, gen uint64) int {
	n := 0
	for key, st := range s.traces {
		if st.seen == gen {
			continue
		}
		switch st.group.Parent() {
		case layer:
			st.group.Remove()
		case nil:
		default:
			continue
		}
		delete(s.traces, key)
		n++
	}
	return n
}

// Len returns the number of traces held.
func (s *RenderState) Len() int { return len(s.traces) }

// Keys returns the trace keys held, sorted.
func (s *RenderState) Keys() []string {
	keys := make([]string, 0, len(s.traces))
	for k := range s.traces {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Group returns the trace group held under key, or nil.
func (s *RenderState) Group(key string) *scene.Node {
	if st := s.traces[key]; st != nil {
		return st.group
	}
	return nil
}
