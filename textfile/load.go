package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rrblist"
)

// Some constants for fragment size defaults, in lines
const (
	smallFragment = 16
	largeFragment = 256
	maxFragment   = 4096
)

// Options configure loading of a text file. Zero values select defaults.
type Options struct {
	FragmentLines int  // number of lines per fragment; default depends on file size
	BranchBits    uint // branch bits of the resulting list
}

// Progress is broadcast to subscribers of a Loader for every fragment of a
// file appended to the list.
type Progress struct {
	Lines int   // lines loaded so far
	Bytes int64 // bytes loaded so far
}

// Loader loads a text file into a list of lines.
type Loader struct {
	name string
	opts Options
	cast *caster.Caster // broadcaster for progress messages
}

// fragment is a group of lines sent from the reading goroutine.
type fragment struct {
	lines []string
	bytes int64
	err   error
}

// NewLoader creates a loader for the file name.
func NewLoader(name string, opts Options) *Loader {
	return &Loader{
		name: name,
		opts: opts,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
	}
}

// Subscribe registers for Progress messages. The channel is closed when
// loading is finished. Loading waits for slow subscribers, therefore
// clients have to drain the channel.
func (ld *Loader) Subscribe(ctx context.Context, capacity uint) (chan interface{}, bool) {
	return ld.cast.Sub(ctx, capacity)
}

// Load reads a file, which must be a regular text file, and returns its
// lines as an immutable list. Line terminators are stripped.
func Load(ctx context.Context, name string, opts Options) (*rrblist.List[string], error) {
	return NewLoader(name, opts).Load(ctx)
}

// Load reads the loader's file. It may be called once.
func (ld *Loader) Load(ctx context.Context) (*rrblist.List[string], error) {
	defer ld.cast.Close()
	file, info, err := openFile(ld.name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	fragLines := ld.opts.FragmentLines
	if fragLines <= 0 || fragLines > maxFragment {
		fragLines = smallFragment
		if info.Size() > 64*1024 {
			fragLines = largeFragment
		}
	}
	var opts []rrblist.Option
	if ld.opts.BranchBits > 0 {
		opts = append(opts, rrblist.WithBranchBits(ld.opts.BranchBits))
	}
	base, err := rrblist.Of[string](nil, opts...)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ch := make(chan fragment, 4)
	go readFragments(ctx, file, fragLines, ch)
	progress := Progress{}
	var loadErr error
	list := base.Batch(func(l *rrblist.List[string]) {
		for {
			select {
			case <-ctx.Done():
				loadErr = ctx.Err()
				return
			case frag, ok := <-ch:
				if !ok {
					loadErr = ctx.Err()
					return
				}
				if frag.err != nil {
					loadErr = frag.err
					return
				}
				l.Append(frag.lines...)
				progress.Lines += len(frag.lines)
				progress.Bytes += frag.bytes
				ld.cast.Pub(progress)
			}
		}
	})
	if loadErr != nil {
		return nil, loadErr
	}
	tracer().Debugf("loaded %d lines (%d bytes) from %s", progress.Lines, progress.Bytes, ld.name)
	return list, nil
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*os.File, os.FileInfo, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, nil, fmt.Errorf("textfile: %w", err)
	} else if !fi.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, nil, fmt.Errorf("textfile: %w", err)
	}
	return file, fi, nil
}

// readFragments reads lines from r and sends them in groups of n lines.
// It closes ch when done.
func readFragments(ctx context.Context, r io.Reader, n int, ch chan<- fragment) {
	defer close(ch)
	send := func(f fragment) bool {
		select {
		case ch <- f:
			return true
		case <-ctx.Done():
			return false
		}
	}
	br := bufio.NewReader(r)
	frag := fragment{lines: make([]string, 0, n)}
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			frag.bytes += int64(len(line))
			line = strings.TrimSuffix(line, "\n")
			frag.lines = append(frag.lines, strings.TrimSuffix(line, "\r"))
		}
		if len(frag.lines) == n || (err != nil && len(frag.lines) > 0) {
			if !send(frag) {
				return
			}
			frag = fragment{lines: make([]string, 0, n)}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				send(fragment{err: fmt.Errorf("textfile: loading text fragment: %w", err)})
			}
			return
		}
	}
}
