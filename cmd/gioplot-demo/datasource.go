package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"git.sr.ht/~cdouglass/gioplot"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/exp/slices"
)

// readPoints parses CSV rows of x,y pairs into control points sorted
// by X. A non-numeric first row is treated as a heading and skipped.
func readPoints(r io.Reader) ([]gioplot.Point, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read control points: %w", err)
	}
	var points []gioplot.Point
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: expected x,y but found %d fields", i+1, len(rec))
		}
		x, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("row %d: failed parsing x: %w", i+1, err)
		}
		y, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: failed parsing y: %w", i+1, err)
		}
		points = append(points, gioplot.Point{X: x, Y: y})
	}
	slices.SortFunc(points, func(a, b gioplot.Point) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
	return points, nil
}

func readPointsFile(path string) ([]gioplot.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()
	return readPoints(f)
}

// watchPoints returns a stream provider that emits the control points
// in path, re-reading and re-emitting whenever the file is written.
func watchPoints(path string) func(context.Context) <-chan []gioplot.Point {
	return func(ctx context.Context) <-chan []gioplot.Point {
		out := make(chan []gioplot.Point)
		go func() {
			defer close(out)
			send := func(points []gioplot.Point) bool {
				select {
				case out <- points:
					return true
				case <-ctx.Done():
					return false
				}
			}
			points, err := readPointsFile(path)
			if err != nil {
				log.Printf("loading %s: %v", path, err)
				return
			}
			if !send(points) {
				return
			}
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				log.Printf("failed creating file watcher: %v", err)
				return
			}
			defer watcher.Close()
			if err := watcher.Add(path); err != nil {
				log.Printf("failed watching %s: %v", path, err)
				return
			}
			for {
				select {
				case <-ctx.Done():
					return
				case event := <-watcher.Events:
					if !event.Has(fsnotify.Write) {
						continue
					}
					points, err := readPointsFile(path)
					if err != nil {
						log.Printf("reloading %s: %v", path, err)
						continue
					}
					if !send(points) {
						return
					}
				case err := <-watcher.Errors:
					log.Printf("watching %s: %v", path, err)
				}
			}
		}()
		return out
	}
}
