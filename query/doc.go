// Package query exposes the street-map operations over a line-oriented
// text surface: lookup-and-print, substring name search, validated travel
// time, and shortest-time routing.
//
// What
//
//	A Query binds one immutable core.StreetMap to one io.Writer. Each
//	operation is independent, allocates only transient working memory, and
//	writes its result as one or more text lines:
//
//	  PrintNode(id)               Node <id>: (<lat.7f>, <lon.7f>)
//	  PrintWay(id)                Way <id>: <name>
//	  FindWaysByName(sub)         matching way IDs, "<id> " each, then newline
//	  FindNodesByNames(s1, s2)    matching node IDs, "<id> " each, then newline
//	  TravelTime(ids)             minutes as %.4f, or an error line and -1.0
//	  ShortestPath(start, end)    space-separated node IDs, or an error line
//
// Output contract
//
//	Error lines follow the fixed grammar "error: ..." — period-terminated
//	in path contexts, non-terminated in print contexts. Name matching is
//	case-sensitive plain substring containment. The two-name node search
//	requires two *distinct* witnessing ways: a single way whose name
//	contains both substrings does not qualify. An empty search result is
//	just a newline. Disconnection produces no output line at all.
//
// Concurrency
//
//	The map is never mutated, so concurrent queries are safe as long as the
//	destination writers are not shared.
package query
