package main

import (
	"context"
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
)

func main() {
	dataPath := flag.String("data", "", "CSV file of x,y control points to plot; reloaded when the file changes")
	flag.Parse()
	go func() {
		w := app.NewWindow(
			app.Title("gioplot demo"),
			app.Size(unit.Dp(800), unit.Dp(600)),
		)
		if err := loop(w, *dataPath); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, dataPath string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	controller := stream.NewController(ctx, w.Invalidate)
	expl := explorer.NewExplorer(w)
	ui := newUI(controller, expl, dataPath)
	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}
