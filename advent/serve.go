package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/felixge/fgprof"
	"github.com/julienschmidt/httprouter"
)

const maxInputSize = 10 << 20

// runServe serves solutions over HTTP:
//
//	curl --data-binary @input.txt localhost:8016/solve/16b
func runServe(e *env, args []string) error {
	if len(args) != 0 {
		return errors.New("usage: advent serve")
	}
	log.Printf("Listening on %s", e.cfg.addr)
	return http.ListenAndServe(e.cfg.addr, newRouter(e))
}

func newRouter(e *env) *httprouter.Router {
	r := httprouter.New()
	r.GET("/solutions", e.handleSolutions)
	r.POST("/solve/:name", e.handleSolve)
	r.Handler("GET", "/debug/fgprof", fgprof.Handler())
	return r
}

func (e *env) handleSolutions(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

func (e *env) handleSolve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("name")
	fn, ok := solutions[name]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown solution %q", name), http.StatusNotFound)
		return
	}
	input, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxInputSize))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	start := time.Now()
	answer, err := fn(e, input)
	log.Printf("%s %s (%d bytes) in %s", r.Method, r.URL.Path, len(input), time.Since(start))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, answer)
}

// startProfile starts a wall-clock profile written to path when the
// returned function is called.
func startProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stop(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
