// Copyright 2024 The Ontograph Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package repl implements the interactive query loop.
package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/peterh/liner"

	"github.com/ontograph/ontograph"
	"github.com/ontograph/ontograph/query"
)

const (
	ps1 = "ontograph> "

	history = ".ontograph_history"
)

// Repl drops into an interactive query prompt over the handle.
func Repl(ctx context.Context, h *ontograph.Handle) error {
	term, err := terminal(history)
	if os.IsNotExist(err) {
		fmt.Printf("creating new history file: %q\n", history)
	}
	defer persist(term, history)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line, err := term.Prompt(ps1)
		if err != nil {
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		term.AppendHistory(line)

		switch line {
		case "help":
			fmt.Print("Help\n\texit // Exit\n\thelp // this help\n\t:reload // reload the graph model\n\t:count // number of triples\n\tanything else is run as a query\n")
			continue
		case ":reload":
			if err := h.Reload(); err != nil {
				fmt.Println("Error: ", err)
			}
			continue
		case ":count":
			fmt.Printf("%d triples\n", len(h.Set().Triples))
			continue
		case "exit":
			term.Close()
			os.Exit(0)
		}

		res, err := h.Query(line)
		if err != nil {
			fmt.Println("Error: ", err)
			continue
		}
		printResult(res)
	}
}

func printResult(res *query.Result) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(res.Columns, "\t"))
	for _, row := range res.Rows {
		vals := make([]string, len(res.Columns))
		for i, c := range res.Columns {
			vals[i] = row[c]
		}
		fmt.Fprintln(w, strings.Join(vals, "\t"))
	}
	w.Flush()

	results := "result"
	if len(res.Rows) != 1 {
		results += "s"
	}
	fmt.Printf("-----------\n%d %s in %g ms\n", len(res.Rows), results,
		float64(res.ExecutionTime.Nanoseconds())/1e6)
}

func terminal(path string) (*liner.State, error) {
	term := liner.NewLiner()

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c

		err := persist(term, history)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to properly clean up terminal: %v\n", err)
			os.Exit(1)
		}

		os.Exit(0)
	}()

	f, err := os.Open(path)
	if err != nil {
		return term, err
	}
	defer f.Close()
	_, err = term.ReadHistory(f)
	return term, err
}

func persist(term *liner.State, path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return fmt.Errorf("could not open %q to append history: %v", path, err)
	}
	defer f.Close()
	_, err = term.WriteHistory(f)
	if err != nil {
		return fmt.Errorf("could not write history to %q: %v", path, err)
	}
	return term.Close()
}
