// Command listdemo is a short tour of the orxlist package. For the doubly
// variant it seeds a list, pops twice from the back, inserts after the
// midpoint by index, forces an explicit compaction so the utilization
// change is visible, and appends another list at the front. For the
// singly variant it seeds a list, pops from the front and pushes at the
// back.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/orxfun/orx-linked-list"
	"github.com/spf13/pflag"
)

var (
	size     = pflag.IntP("size", "n", 8, "number of integers to seed the list with")
	variant  = pflag.StringP("variant", "v", "doubly", "list variant to demo: doubly or singly")
	logJSON  = pflag.Bool("log-json", false, "use json logs instead of tinted text")
	logLevel = pflag.StringP("log-level", "L", "info", "log level: debug, info, warn, error")
	help     = pflag.BoolP("help", "h", false, "show this help text")
)

func main() {
	pflag.Parse()
	if *help {
		fmt.Fprintf(os.Stderr, "usage: %s [options]\n%s", os.Args[0], pflag.CommandLine.FlagUsages())
		return
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	if *logJSON {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
	} else {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: lvl})))
	}

	switch *variant {
	case "doubly":
		runDoubly(*size)
	case "singly":
		runSingly(*size)
	default:
		slog.Error("unknown variant", "variant", *variant)
		os.Exit(2)
	}
}

func runDoubly(n int) {
	l := orxlist.NewDoubly[int](orxlist.WithReclaimPolicy[int](orxlist.ReclaimThreshold{D: 2}))
	for i := 0; i < n; i++ {
		l.PushBack(i)
	}
	slog.Info("seeded doubly list", "len", l.Len(), "values", l.String())

	if v, ok := l.PopBack(); ok {
		slog.Info("popped back", "value", v, "remaining", l.String())
	}
	if v, ok := l.PopBack(); ok {
		slog.Info("popped back", "value", v, "remaining", l.String(), "utilization", l.NodeUtilization().Ratio())
	}

	mid, ok := l.IndexOf(func(v int) bool { return v == n/2 })
	if ok {
		next, _ := l.InsertNextTo(mid, 1000)
		slog.Info("inserted after midpoint", "list", l.String(), "newIndex", next.String())
	}

	l.ReclaimClosedNodes()
	slog.Info("reclaimed", "utilization", l.NodeUtilization().Ratio(), "list", l.String())

	other := orxlist.NewDoublyFromSlice([]int{-3, -2, -1})
	if err := l.AppendFront(other); err != nil {
		slog.Error("append front failed", "error", err)
	} else {
		slog.Info("appended front", "list", l.String())
	}
}

func runSingly(n int) {
	l := orxlist.NewSingly[int]()
	for i := 0; i < n; i++ {
		l.PushBack(i)
	}
	slog.Info("seeded singly list", "len", l.Len(), "values", l.String())

	if v, ok := l.PopFront(); ok {
		slog.Info("popped front", "value", v, "remaining", l.String())
	}
	l.PushBack(n)
	slog.Info("pushed back", "list", l.String())
}
