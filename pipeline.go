package lmu2png

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bodgit/lmu2png/rpg"
)

// isMapFile reports whether file is a JSON exported map, MapXXXX.json.
func isMapFile(file string) bool {
	name := strings.ToLower(filepath.Base(file))
	if !strings.HasPrefix(name, "map") || !strings.HasSuffix(name, ".json") {
		return false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, "map"), ".json")
	if digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (r *Renderer) findMaps(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !isMapFile(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (r *Renderer) mapWorker(ctx context.Context, in <-chan string, chipsets Chipsets, conf Config) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			select {
			case <-ctx.Done():
				return
			default:
			}

			m, err := rpg.LoadMap(file)
			if err != nil {
				errc <- fmt.Errorf("%s: %w", file, err)
				return
			}

			img, err := r.RenderMap(m, chipsets, "", conf)
			if err != nil {
				errc <- fmt.Errorf("%s: %w", file, err)
				return
			}

			if err := Save(strings.TrimSuffix(file, filepath.Ext(file))+".png", img, 0); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

// waitForPipeline returns the first error from errs, cancelling the pipeline
// when it arrives. It waits for every stage to finish first.
func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	var first error
	for err := range mergeErrors(errs...) {
		if err != nil && first == nil {
			first = err
			cancel()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// RenderDirectory renders every MapXXXX.json file found under path to a PNG
// file alongside it. Maps are rendered concurrently and the first error
// stops the walk; it returns once every worker has stopped.
func (r *Renderer) RenderDirectory(path string, chipsets Chipsets, conf Config) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := r.findMaps(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < runtime.NumCPU(); i++ {
		errc, err := r.mapWorker(ctx, files, chipsets, conf)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(cancelFunc, errcList...)
}
