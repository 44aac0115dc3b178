package testutil

import (
	"github.com/hupe1980/engineroom/core"
)

// AnalysisBuilder provides a fluent helper for constructing analysis updates
// in tests. Example:
//
//	u := NewAnalysisBuilder().Depth(12).ScoreCP(35).PV("e2e4", "e7e5").Build()
//
// Chain only the parts you need; unset fields stay nil.
type AnalysisBuilder struct {
	data core.AnalysisData
}

// NewAnalysisBuilder creates an empty builder.
func NewAnalysisBuilder() *AnalysisBuilder { return &AnalysisBuilder{} }

// Depth sets the search depth (chainable).
func (b *AnalysisBuilder) Depth(d int) *AnalysisBuilder { b.data.Depth = &d; return b }

// SelDepth sets the selective search depth (chainable).
func (b *AnalysisBuilder) SelDepth(d int) *AnalysisBuilder { b.data.SelDepth = &d; return b }

// Nodes sets the searched node count (chainable).
func (b *AnalysisBuilder) Nodes(n int) *AnalysisBuilder { b.data.Nodes = &n; return b }

// NPS sets the nodes-per-second rate (chainable).
func (b *AnalysisBuilder) NPS(n int) *AnalysisBuilder { b.data.NPS = &n; return b }

// TimeMs sets the elapsed search time in milliseconds (chainable).
func (b *AnalysisBuilder) TimeMs(t int) *AnalysisBuilder { b.data.TimeMs = &t; return b }

// MultiPV sets the principal variation index (chainable).
func (b *AnalysisBuilder) MultiPV(n int) *AnalysisBuilder { b.data.MultiPV = &n; return b }

// ScoreCP sets a centipawn score (chainable).
func (b *AnalysisBuilder) ScoreCP(cp int) *AnalysisBuilder {
	b.data.Score = &core.Score{CP: &cp}
	return b
}

// ScoreMate sets a mate-in-N score (chainable).
func (b *AnalysisBuilder) ScoreMate(moves int) *AnalysisBuilder {
	b.data.Score = &core.Score{Mate: &moves}
	return b
}

// PV sets the principal variation (chainable).
func (b *AnalysisBuilder) PV(moves ...string) *AnalysisBuilder { b.data.PV = moves; return b }

// CurrMove sets the move currently being searched (chainable).
func (b *AnalysisBuilder) CurrMove(m string) *AnalysisBuilder { b.data.CurrMove = &m; return b }

// Build constructs the core.AnalysisUpdate value.
func (b *AnalysisBuilder) Build() core.AnalysisUpdate {
	return core.AnalysisUpdate{Data: b.data}
}
