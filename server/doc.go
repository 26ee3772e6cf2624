// Package server exposes the street-map query operations over HTTP.
//
// Routes (all GET):
//
//	/nodes/<id>                     one node
//	/nodes?name=<s1>&name2=<s2>     two-name intersection search
//	/ways/<id>                      one way
//	/ways?name=<s>                  substring name search
//	/travel-time?nodes=<a,b,c>      validated travel time in minutes
//	/route?from=<a>&to=<b>          shortest-time route; format=geojson
//	                                switches the body to a GeoJSON feature
//
// Responses are JSON. Path-validation failures map to 400, unknown
// identifiers to 404, both with {"error": "<message>"} bodies carrying the
// engine's message text. A route between disconnected endpoints is a 200
// with an empty node list and a null "minutes" — disconnection is a valid
// result, not an error. With format=geojson there is no feature to return,
// so a disconnected route is a 404 with an error body.
//
// The map is immutable, so one handler serves concurrent requests without
// synchronization. Listen address and map path come from a YAML config.
package server
