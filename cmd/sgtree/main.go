package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-trees/Trees"

	"github.com/urfave/cli/v2"
)

func main() {
	newApp().RunAndExitOnError()
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "sgtree",
		Usage: "informal debugging CLI tool for scapegoat and plain binary search trees",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log tree statistics to stderr",
				EnvVars: []string{"SGTREE_DEBUG"},
			},
		},
		Before: func(cctx *cli.Context) error {
			lvl := slog.LevelInfo
			if cctx.Bool("debug") {
				lvl = slog.LevelDebug
			}
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
			slog.SetDefault(slog.New(h))
			return nil
		},
	}
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:      "dot",
			Usage:     "print the tree built from the given integers as a Graphviz digraph",
			ArgsUsage: "[ints...] (read from stdin if none)",
			Flags:     treeFlags,
			Action:    runDot,
		},
		&cli.Command{
			Name:      "walk",
			Usage:     "print a traversal of the tree built from the given integers",
			ArgsUsage: "[ints...] (read from stdin if none)",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:  "order",
					Usage: "traversal order: in, pre or post",
					Value: "in",
				},
			}, treeFlags...),
			Action: runWalk,
		},
	}
	return app
}

var treeFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  "plain",
		Usage: "use an unbalanced binary search tree instead of a scapegoat tree",
	},
	&cli.IntSliceFlag{
		Name:  "remove",
		Usage: "remove these values after inserting",
	},
	&cli.BoolFlag{
		Name:  "balance",
		Usage: "fully rebalance the tree before printing",
	},
}

// tree is the part of Trees.BSTree and Trees.Scapegoat the commands use.
type tree interface {
	Trees.OrderedTree[int]
	Balance()
	Dot() string
}

func readInts(cctx *cli.Context) ([]int, error) {
	var words []string
	if cctx.Args().Present() {
		words = cctx.Args().Slice()
	} else {
		sc := bufio.NewScanner(cctx.App.Reader)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			words = append(words, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	}
	vs := make([]int, 0, len(words))
	for _, w := range words {
		v, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", w, err)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func buildTree(cctx *cli.Context) (tree, error) {
	vs, err := readInts(cctx)
	if err != nil {
		return nil, err
	}
	var t tree
	var sg *Trees.Scapegoat[int]
	if cctx.Bool("plain") {
		t = Trees.NewOrdered[int]()
	} else {
		sg = Trees.NewOrderedScapegoat[int]()
		t = sg
	}
	for _, v := range vs {
		t.Insert(v)
	}
	for _, v := range cctx.IntSlice("remove") {
		if !t.Remove(v) {
			slog.Warn("value not in tree", "value", v)
		}
	}
	if cctx.Bool("balance") {
		t.Balance()
	}
	slog.Debug("built tree", "inserted", len(vs), "size", t.Size(), "height", t.Height(), "balanced", t.Balanced())
	if sg != nil {
		slog.Debug("scapegoat rebuilds", "count", sg.Rebalances())
	}
	return t, nil
}

func runDot(cctx *cli.Context) error {
	t, err := buildTree(cctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cctx.App.Writer, t.Dot())
	return err
}

var errOrder = errors.New("unknown traversal order")

func runWalk(cctx *cli.Context) error {
	t, err := buildTree(cctx)
	if err != nil {
		return err
	}
	var f func() (int, bool)
	switch o := cctx.String("order"); o {
	case "in":
		f = t.InOrder()
	case "pre":
		f = t.PreOrder()
	case "post":
		f = t.PostOrder()
	default:
		return fmt.Errorf("%w: %q", errOrder, o)
	}
	var sb strings.Builder
	for v, ok := f(); ok; v, ok = f() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	_, err = io.WriteString(cctx.App.Writer, sb.String()+"\n")
	return err
}
