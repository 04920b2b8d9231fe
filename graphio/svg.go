package graphio

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/katalvlaran/kmst/graph"
)

// Tree layout constants (points).
const (
	layerStep  = 150.0
	treeMargin = 200.0
	nodeRadius = 4.0
)

// Convergence plot size (points).
const (
	plotWidth  = 800.0
	plotHeight = 400.0
)

var (
	edgeColor   = color.Gray{Y: 128}
	nodeColor   = color.Black
	centerColor = color.RGBA{R: 255, A: 255}
	curveColor  = color.RGBA{R: 70, G: 130, B: 180, A: 255}
)

// radial is a computed tree layout: positions around the origin, the center
// node and the canvas side needed to hold every ring.
type radial struct {
	center string
	order  []string
	pos    map[string]plotter.XY
	size   float64
}

// layoutRadial places the node of highest degree (first seen wins ties) at
// the origin and every other node on the ring of its breadth-first layer,
// layerStep apart. Nodes not reachable from the center share one extra ring.
func layoutRadial(edges []graph.Edge) radial {
	order, adj := adjacency(edges)
	center := order[0]
	for _, n := range order[1:] {
		if len(adj[n]) > len(adj[center]) {
			center = n
		}
	}

	layers := bfsLayers(center, order, adj)
	r := radial{
		center: center,
		pos:    make(map[string]plotter.XY, len(order)),
		size:   float64(len(layers)-1)*layerStep*2 + 2*treeMargin,
	}
	for depth, names := range layers {
		radius := float64(depth) * layerStep
		for i, name := range names {
			angle := float64(i) / float64(len(names)) * 2 * math.Pi
			r.pos[name] = plotter.XY{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
			r.order = append(r.order, name)
		}
	}

	return r
}

// PlotTree renders edges as an SVG with the radial layout of layoutRadial.
// The center node is drawn red, the rest black, every distinct edge once in
// gray. An empty edge list writes nothing.
func PlotTree(w io.Writer, edges []graph.Edge) error {
	if len(edges) == 0 {
		return nil
	}
	layout := layoutRadial(edges)

	p := plot.New()
	p.HideAxes()
	half := layout.size/2 - treeMargin/2
	p.X.Min, p.X.Max = -half, half
	p.Y.Min, p.Y.Max = -half, half

	for _, seg := range distinctEdges(edges) {
		line, err := plotter.NewLine(plotter.XYs{layout.pos[seg[0]], layout.pos[seg[1]]})
		if err != nil {
			return fmt.Errorf("plot edge %s-%s: %w", seg[0], seg[1], err)
		}
		line.LineStyle.Color = edgeColor
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
	}

	others := make(plotter.XYs, 0, len(layout.order)-1)
	for _, name := range layout.order {
		if name != layout.center {
			others = append(others, layout.pos[name])
		}
	}
	if len(others) > 0 {
		nodes, err := plotter.NewScatter(others)
		if err != nil {
			return fmt.Errorf("plot nodes: %w", err)
		}
		nodes.GlyphStyle = draw.GlyphStyle{Color: nodeColor, Radius: vg.Points(nodeRadius), Shape: draw.CircleGlyph{}}
		p.Add(nodes)
	}
	center, err := plotter.NewScatter(plotter.XYs{layout.pos[layout.center]})
	if err != nil {
		return fmt.Errorf("plot center: %w", err)
	}
	center.GlyphStyle = draw.GlyphStyle{Color: centerColor, Radius: vg.Points(nodeRadius * 1.5), Shape: draw.CircleGlyph{}}
	p.Add(center)

	names := plotter.XYLabels{XYs: make(plotter.XYs, len(layout.order)), Labels: layout.order}
	for i, name := range layout.order {
		names.XYs[i] = layout.pos[name]
	}
	labels, err := plotter.NewLabels(names)
	if err != nil {
		return fmt.Errorf("plot labels: %w", err)
	}
	labels.Offset = vg.Point{X: vg.Points(nodeRadius * 2), Y: vg.Points(nodeRadius * 2)}
	p.Add(labels)

	side := vg.Points(layout.size)
	return writeSVG(w, p, side, side)
}

// distinctEdges returns endpoint pairs in input order, dropping reversed or
// repeated duplicates.
func distinctEdges(edges []graph.Edge) [][2]string {
	seen := make(map[[2]string]bool, len(edges))
	out := make([][2]string, 0, len(edges))
	for _, e := range edges {
		key := [2]string{e.From, e.To}
		if e.To < e.From {
			key = [2]string{e.To, e.From}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, [2]string{e.From, e.To})
	}

	return out
}

// adjacency returns node names in first-seen order and their neighbor lists.
func adjacency(edges []graph.Edge) ([]string, map[string][]string) {
	adj := make(map[string][]string)
	var order []string
	for _, e := range edges {
		for _, n := range [2]string{e.From, e.To} {
			if _, ok := adj[n]; !ok {
				adj[n] = nil
				order = append(order, n)
			}
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	return order, adj
}

// bfsLayers groups nodes by hop distance from center. Unreached nodes form
// one trailing layer in first-seen order.
func bfsLayers(center string, order []string, adj map[string][]string) [][]string {
	depth := map[string]int{center: 0}
	layers := [][]string{{center}}
	queue := []string{center}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, nbr := range adj[id] {
			if _, seen := depth[nbr]; seen {
				continue
			}
			d := depth[id] + 1
			depth[nbr] = d
			if d == len(layers) {
				layers = append(layers, nil)
			}
			layers[d] = append(layers[d], nbr)
			queue = append(queue, nbr)
		}
	}

	var rest []string
	for _, n := range order {
		if _, seen := depth[n]; !seen {
			rest = append(rest, n)
		}
	}
	if len(rest) > 0 {
		layers = append(layers, rest)
	}

	return layers
}

// curvePoints maps curve to (iteration, cost) points.
//
// Errors:
//   - ErrNonFinite if any value is NaN or ±Inf.
func curvePoints(curve []float64) (plotter.XYs, error) {
	pts := make(plotter.XYs, len(curve))
	for i, c := range curve {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: curve[%d] = %v", ErrNonFinite, i, c)
		}
		pts[i] = plotter.XY{X: float64(i), Y: c}
	}

	return pts, nil
}

// PlotConvergence renders curve as an SVG line chart: iteration on the x
// axis, best cost on the y axis. An empty curve yields bare axes.
func PlotConvergence(w io.Writer, curve []float64) error {
	pts, err := curvePoints(curve)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Convergence"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Best cost"
	if len(pts) > 0 {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot curve: %w", err)
		}
		line.LineStyle.Color = curveColor
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
	}

	return writeSVG(w, p, vg.Points(plotWidth), vg.Points(plotHeight))
}

func writeSVG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	canvas := vgsvg.New(width, height)
	p.Draw(draw.New(canvas))
	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}

	return nil
}
