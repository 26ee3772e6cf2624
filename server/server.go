package server

import (
	"errors"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gotidy/ptr"
	"github.com/valyala/fasthttp"

	"github.com/katalvlaran/streetmap/core"
	"github.com/katalvlaran/streetmap/geojson"
	"github.com/katalvlaran/streetmap/mapfile"
	"github.com/katalvlaran/streetmap/route"
)

// Server answers HTTP queries against one immutable street map.
type Server struct {
	m *core.StreetMap
}

// New binds a server to the given map.
func New(m *core.StreetMap) *Server {
	return &Server{m: m}
}

// ListenAndServe serves the query API on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	return fasthttp.ListenAndServe(addr, s.Handle)
}

// IDsResponse carries a bare identifier list (name searches).
type IDsResponse struct {
	IDs []int `json:"ids"`
}

// TravelTimeResponse carries a validated travel time.
type TravelTimeResponse struct {
	Minutes float64 `json:"minutes"`
}

// RouteResponse carries a shortest-time route. Minutes is null when the
// endpoints are disconnected.
type RouteResponse struct {
	Nodes   []int    `json:"nodes"`
	Minutes *float64 `json:"minutes"`
}

// ErrorResponse carries a failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handle is the fasthttp request handler for the whole query surface.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "only GET is supported")

		return
	}

	path := string(ctx.Path())
	switch {
	case path == "/ways":
		s.handleFindWays(ctx)
	case strings.HasPrefix(path, "/ways/"):
		s.handleWay(ctx, strings.TrimPrefix(path, "/ways/"))
	case path == "/nodes":
		s.handleFindNodes(ctx)
	case strings.HasPrefix(path, "/nodes/"):
		s.handleNode(ctx, strings.TrimPrefix(path, "/nodes/"))
	case path == "/travel-time":
		s.handleTravelTime(ctx)
	case path == "/route":
		s.handleRoute(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "unknown route")
	}
}

func (s *Server) handleNode(ctx *fasthttp.RequestCtx, rawID string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "node id must be an integer")

		return
	}

	n, err := s.m.Node(id)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusNotFound, err.Error())

		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, mapfile.NodeDoc{
		ID:     n.ID,
		Lat:    n.Lat,
		Lon:    n.Lon,
		WayIDs: n.WayIDs(),
	})
}

func (s *Server) handleWay(ctx *fasthttp.RequestCtx, rawID string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "way id must be an integer")

		return
	}

	w, err := s.m.Way(id)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusNotFound, err.Error())

		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, mapfile.WayDoc{
		ID:       w.ID,
		Name:     w.Name,
		MaxSpeed: ptr.Float64(w.MaxSpeed),
		OneWay:   ptr.Bool(w.OneWay),
		NodeIDs:  w.NodeIDs(),
	})
}

func (s *Server) handleFindWays(ctx *fasthttp.RequestCtx) {
	sub := string(ctx.QueryArgs().Peek("name"))

	ids := make([]int, 0)
	for id := 0; id < s.m.WayCount(); id++ {
		w, err := s.m.Way(id)
		if err == nil && strings.Contains(w.Name, sub) {
			ids = append(ids, id)
		}
	}
	s.writeJSON(ctx, fasthttp.StatusOK, IDsResponse{IDs: ids})
}

func (s *Server) handleFindNodes(ctx *fasthttp.RequestCtx) {
	sub1 := string(ctx.QueryArgs().Peek("name"))
	sub2 := string(ctx.QueryArgs().Peek("name2"))

	ids := make([]int, 0)
	for id := 0; id < s.m.NodeCount(); id++ {
		n, err := s.m.Node(id)
		if err == nil && nodeMatches(s.m, n, sub1, sub2) {
			ids = append(ids, id)
		}
	}
	s.writeJSON(ctx, fasthttp.StatusOK, IDsResponse{IDs: ids})
}

// nodeMatches mirrors the query façade's two-name intersection: the two
// witnessing ways must be distinct.
func nodeMatches(m *core.StreetMap, n *core.Node, sub1, sub2 string) bool {
	wayIDs := n.WayIDs()
	for _, wid1 := range wayIDs {
		w1, err := m.Way(wid1)
		if err != nil || !strings.Contains(w1.Name, sub1) {
			continue
		}
		if sub2 == "" {
			return true
		}
		for _, wid2 := range wayIDs {
			if wid2 == wid1 {
				continue
			}
			w2, err := m.Way(wid2)
			if err == nil && strings.Contains(w2.Name, sub2) {
				return true
			}
		}
	}

	return false
}

func (s *Server) handleTravelTime(ctx *fasthttp.RequestCtx) {
	ids, err := parseIDList(string(ctx.QueryArgs().Peek("nodes")))
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "nodes must be a comma-separated integer list")

		return
	}

	minutes, err := route.TravelTime(s.m, ids)
	if err != nil {
		s.writePathError(ctx, err)

		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, TravelTimeResponse{Minutes: minutes})
}

func (s *Server) handleRoute(ctx *fasthttp.RequestCtx) {
	from, errFrom := strconv.Atoi(string(ctx.QueryArgs().Peek("from")))
	to, errTo := strconv.Atoi(string(ctx.QueryArgs().Peek("to")))
	if errFrom != nil || errTo != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "from and to must be integers")

		return
	}

	path, minutes, err := route.ShortestPath(s.m, from, to)
	if err != nil {
		s.writePathError(ctx, err)

		return
	}

	if string(ctx.QueryArgs().Peek("format")) == "geojson" {
		if len(path) == 0 {
			s.writeError(ctx, fasthttp.StatusNotFound, "no route between the endpoints")

			return
		}
		feature, err := geojson.Route(s.m, path)
		if err != nil {
			s.writePathError(ctx, err)

			return
		}
		s.writeJSON(ctx, fasthttp.StatusOK, feature)

		return
	}

	resp := RouteResponse{Nodes: []int{}}
	if len(path) > 0 {
		resp.Nodes = path
		resp.Minutes = ptr.Float64(minutes)
	}
	s.writeJSON(ctx, fasthttp.StatusOK, resp)
}

// writePathError maps engine failures onto HTTP statuses: unknown
// identifiers are 404, every other validation failure 400.
func (s *Server) writePathError(ctx *fasthttp.RequestCtx, err error) {
	status := fasthttp.StatusBadRequest
	msg := err.Error()

	var pe *route.PathError
	if errors.As(err, &pe) {
		msg = pe.Message()
		if pe.Reason == route.ReasonMissingNode {
			status = fasthttp.StatusNotFound
		}
	}
	s.writeError(ctx, status, msg)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, msg string) {
	s.writeJSON(ctx, status, ErrorResponse{Error: msg})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	buf, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)

		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(buf)
}

// parseIDList parses "0,1,2" into integers; the empty string is an error.
func parseIDList(raw string) ([]int, error) {
	if raw == "" {
		return nil, errors.New("server: empty id list")
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
