package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/c9s/indicators/pkg/cache"
	"github.com/c9s/indicators/pkg/config"
	"github.com/c9s/indicators/pkg/indicator"
	indicatorv2 "github.com/c9s/indicators/pkg/indicator/v2"
	"github.com/c9s/indicators/pkg/num"
	"github.com/c9s/indicators/pkg/series"
)

// NamedIndicator is a Num indicator with a name and statistics.
type NamedIndicator interface {
	indicatorv2.NumIndicator
	Name() string
	Stats() indicator.Stats
	IsStableAt(index int64) bool
}

// Node is one evaluated indicator of the graph. Configured indicators with
// the same definition share a Node.
type Node struct {
	Key       string
	Indicator NamedIndicator
}

// Graph is the indicator graph built from the config.
type Graph struct {
	Bars  *series.BarSeries
	Names []string

	nodes map[string]*Node
}

// BuildGraph creates the configured indicators over bars. Definitions are
// interned by key, so a definition used twice is evaluated once.
func BuildGraph(cfg *config.Config, bars *series.BarSeries, interner *cache.Interner[string, Node]) (*Graph, error) {
	g := &Graph{
		Bars:  bars,
		nodes: make(map[string]*Node),
	}

	barField := func(name string) *Node {
		return interner.Get(name, func() *Node {
			return &Node{Key: name, Indicator: newBarField(bars, name)}
		})
	}

	for _, ic := range cfg.Indicators {
		var n *Node
		if lo.Contains(config.BarFields, ic.Type) {
			n = barField(ic.Type)
		} else {
			input, ok := g.nodes[ic.Input]
			if !ok {
				if !lo.Contains(config.BarFields, ic.Input) {
					return nil, errors.Errorf("indicator %s: input %q is not defined", ic.Name, ic.Input)
				}
				input = barField(ic.Input)
			}

			key := fmt.Sprintf("%s(%s,%d)", ic.Type, input.Key, ic.Length)
			n = interner.Get(key, func() *Node {
				log.Debugf("building indicator %s as %s", ic.Name, key)
				return &Node{Key: key, Indicator: newFormula(ic.Type, input.Indicator, ic.Length)}
			})
		}

		g.nodes[ic.Name] = n
		g.Names = append(g.Names, ic.Name)
	}

	return g, nil
}

// Node returns the node of a configured indicator or a bar field.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Columns returns the nodes of names, or of every configured indicator when
// names is empty.
func (g *Graph) Columns(names []string) ([]string, []*Node, error) {
	if len(names) == 0 {
		names = g.Names
	}

	nodes := make([]*Node, 0, len(names))
	for _, name := range names {
		n, ok := g.nodes[name]
		if !ok {
			return nil, nil, errors.Errorf("column %q is not defined", name)
		}
		nodes = append(nodes, n)
	}

	return names, nodes, nil
}

// Distinct returns every distinct node once.
func (g *Graph) Distinct() []*Node {
	return lo.Uniq(lo.Map(g.Names, func(name string, _ int) *Node { return g.nodes[name] }))
}

func newBarField(bars *series.BarSeries, name string) NamedIndicator {
	switch name {
	case "open":
		return indicatorv2.OpenPrices(bars)
	case "high":
		return indicatorv2.HighPrices(bars)
	case "low":
		return indicatorv2.LowPrices(bars)
	case "volume":
		return indicatorv2.Volumes(bars)
	case "typical":
		return indicatorv2.TypicalPrices(bars)
	}
	return indicatorv2.ClosePrices(bars)
}

func newFormula(typ string, input indicatorv2.NumIndicator, length int) NamedIndicator {
	switch typ {
	case "sma":
		return indicatorv2.SMA(input, length)
	case "ema":
		return indicatorv2.EMA(input, length)
	case "rma":
		return indicatorv2.RMA(input, length)
	case "previous":
		return indicatorv2.Previous[num.Num](input, length)
	}
	panic(fmt.Errorf("unknown indicator type %q", typ))
}
