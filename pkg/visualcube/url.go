package visualcube

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/cubedeck/cubedeck/pkg/alg"
)

// defaultBaseURL is the public visualcube rendering endpoint.
const defaultBaseURL = "https://visualcube.api.cubing.net"

// toVisualiser rewrites human notation into the compact form the service
// expects. Inner-layer double turns need their service spelling first
// (2R2 means "both R layers" there, written r2R2), then spacing and
// readability parens are stripped. Order matters: the 2R2 rewrite must see
// the original spacing.
var toVisualiser = strings.NewReplacer(
	"2R2", "r2R2",
	"2U2", "u2U2",
	" ", "",
	"(", "",
	")", "",
)

// IconURL builds the rendering request for one algorithm.
//
// The service renders the cube state that the given sequence solves, so the
// query carries the visualiser sequence (setup rotations included), the
// puzzle size, the projection view, permutation arrows, and any extra
// parameters (colour schemes, facelet masks). Output format is SVG with
// black cube bodies.
func IconURL(base string, a alg.Algorithm) string {
	if base == "" {
		base = defaultBaseURL
	}

	q := url.Values{}
	q.Set("fmt", "svg")
	q.Set("ac", "black")
	q.Set("pzl", strconv.Itoa(a.Size))
	q.Set("case", toVisualiser.Replace(a.Visualiser()))
	if a.View != "" {
		q.Set("view", string(a.View))
	}
	if len(a.Arrows) > 0 {
		q.Set("arw", strings.Join(a.Arrows, ","))
	}
	for k, v := range a.Params {
		q.Set(k, v)
	}

	return base + "?" + q.Encode()
}
