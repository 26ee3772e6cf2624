// Command streetmap loads a JSON map document and answers queries, either
// through an interactive command loop or as an HTTP server.
//
// Interactive commands mirror the query surface:
//
//	node <id>                  print one node
//	way <id>                   print one way
//	find way <name>            ways whose name contains <name>
//	find node <name> [name2]   nodes touching matching (distinct) ways
//	path time <id> <id> ...    validated travel time in minutes
//	path create <start> <end>  shortest-time route
//	quit
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/katalvlaran/streetmap/core"
	"github.com/katalvlaran/streetmap/mapfile"
	"github.com/katalvlaran/streetmap/query"
	"github.com/katalvlaran/streetmap/server"
)

type options struct {
	MapPath string `short:"m" long:"map" description:"JSON map document to load" value-name:"FILE"`
	Serve   bool   `short:"s" long:"serve" description:"serve the HTTP query API instead of the interactive loop"`
	Listen  string `short:"l" long:"listen" description:"listen address for --serve" value-name:"ADDR"`
	Config  string `short:"c" long:"config" description:"YAML config file providing map and listen defaults" value-name:"FILE"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("streetmap: ")

	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	cfg := server.DefaultConfig()
	if opts.Config != "" {
		loaded, err := server.LoadConfig(opts.Config)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if opts.MapPath != "" {
		cfg.MapPath = opts.MapPath
	}
	if opts.Listen != "" {
		cfg.Listen = opts.Listen
	}
	if cfg.MapPath == "" {
		log.Fatal("no map document given (use --map or a config file)")
	}

	doc, err := mapfile.Load(cfg.MapPath)
	if err != nil {
		log.Fatal(err)
	}
	m, err := doc.Build()
	if err != nil {
		log.Fatal(err)
	}

	if opts.Serve {
		log.Printf("serving %s on %s", cfg.MapPath, cfg.Listen)
		if err := server.New(m).ListenAndServe(cfg.Listen); err != nil {
			log.Fatal(err)
		}

		return
	}

	repl(m)
}

// repl reads commands from stdin and dispatches them against the map until
// EOF or quit.
func repl(m *core.StreetMap) {
	q := query.New(m, os.Stdout)
	sc := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !sc.Scan() {
			fmt.Println()

			return
		}

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" {
			return
		}
		dispatch(q, fields)
	}
}

// dispatch runs one parsed command line against the query surface.
func dispatch(q *query.Query, fields []string) {
	switch fields[0] {
	case "node":
		if id, ok := argInt(fields, 1); ok && len(fields) == 2 {
			q.PrintNode(id)

			return
		}
	case "way":
		if id, ok := argInt(fields, 1); ok && len(fields) == 2 {
			q.PrintWay(id)

			return
		}
	case "find":
		if len(fields) >= 3 && fields[1] == "way" {
			q.FindWaysByName(strings.Join(fields[2:], " "))

			return
		}
		if len(fields) >= 2 && fields[1] == "node" && (len(fields) == 3 || len(fields) == 4) {
			second := ""
			if len(fields) == 4 {
				second = fields[3]
			}
			q.FindNodesByNames(fields[2], second)

			return
		}
	case "path":
		if len(fields) >= 3 && fields[1] == "time" {
			if ids, ok := argInts(fields[2:]); ok {
				q.TravelTime(ids)

				return
			}
		}
		if len(fields) == 4 && fields[1] == "create" {
			start, okS := argInt(fields, 2)
			end, okE := argInt(fields, 3)
			if okS && okE {
				q.ShortestPath(start, end)

				return
			}
		}
	}

	fmt.Println("error: unrecognized command")
}

// argInt parses fields[i] as an integer when present.
func argInt(fields []string, i int) (int, bool) {
	if i >= len(fields) {
		return 0, false
	}
	v, err := strconv.Atoi(fields[i])

	return v, err == nil
}

// argInts parses every field as an integer.
func argInts(fields []string) ([]int, bool) {
	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		ids = append(ids, v)
	}

	return ids, true
}
