package linefile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bdeque"
)

// Some constants for scanner buffer defaults
const (
	sixtyFourKb = 65536
	oneMb       = 1048576
)

// subscriptionBuffer is the channel capacity of the loading subscriber.
const subscriptionBuffer = 256

// line is a broadcast message carrying one scanned line.
type line struct {
	text string
	no   int
}

// eof is the final broadcast message. err is nil if the input has been
// scanned completely.
type eof struct {
	lines int
	err   error
}

// Progress is called for every loaded line with the number of lines loaded
// so far.
type Progress func(lines int)

// Load reads a file, which must be a regular text file, and loads its lines
// into a deque of strings. Line terminators are stripped. Opening of the file
// is done synchronously; scanning happens in a separate goroutine, but Load
// does not return before all lines have been loaded.
func Load(name string, cfg bdeque.Config) (*bdeque.Deque[string], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file: %s", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	T().Debugf("linefile: loading %s (%d bytes)", name, fi.Size())
	return Read(context.Background(), file, cfg, nil)
}

// Read loads the lines of r into a new deque. If progress is non-nil, it is
// called from a subscriber goroutine of its own, concurrently to loading.
// Read returns after all lines have been loaded, after an I/O error, or after
// ctx has been cancelled.
func Read(ctx context.Context, r io.Reader, cfg bdeque.Config, progress Progress) (*bdeque.Deque[string], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, err := bdeque.NewWithConfig[string](cfg)
	if err != nil {
		return nil, err
	}
	cast := caster.New(ctx) // we will broadcast messages when lines are scanned
	var closing sync.Once
	closeCast := func() { closing.Do(func() { cast.Close() }) }
	defer closeCast()
	sub, ok := cast.Sub(ctx, subscriptionBuffer)
	if !ok {
		return nil, fmt.Errorf("linefile: cannot subscribe to line broadcast")
	}
	var watcherDone chan struct{}
	if progress != nil {
		watch, ok := cast.Sub(ctx, subscriptionBuffer)
		if !ok {
			return nil, fmt.Errorf("linefile: cannot subscribe to line broadcast")
		}
		watcherDone = make(chan struct{})
		go func() {
			defer close(watcherDone)
			for m := range watch {
				switch msg := m.(type) {
				case line:
					progress(msg.no)
				case eof:
					return
				}
			}
		}()
	}
	// abort ends the broadcast and waits for the progress subscriber to drain,
	// so that progress is never called after Read has returned.
	abort := func() {
		closeCast()
		if watcherDone != nil {
			<-watcherDone
		}
	}
	go scanLines(r, cast)
	for {
		select {
		case <-ctx.Done():
			abort()
			return nil, ctx.Err()
		case m, open := <-sub:
			if !open {
				abort()
				return nil, fmt.Errorf("linefile: line broadcast closed prematurely")
			}
			switch msg := m.(type) {
			case line:
				d.PushBack(msg.text)
			case eof:
				if watcherDone != nil {
					<-watcherDone
				}
				if msg.err != nil {
					T().Errorf("linefile: %s", msg.err.Error())
					return nil, msg.err
				}
				T().Debugf("linefile: loaded %d lines", msg.lines)
				return d, nil
			}
		}
	}
}

// scanLines publishes every line of r, followed by a final eof message.
func scanLines(r io.Reader, cast *caster.Caster) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, sixtyFourKb), oneMb)
	n := 0
	for scanner.Scan() {
		n++
		if !cast.Pub(line{text: scanner.Text(), no: n}) {
			return // caster closed, nobody is listening any more
		}
	}
	var err error
	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("error loading line %d: %w", n+1, err)
	}
	cast.Pub(eof{lines: n, err: err})
}

// Write writes every element of d to w, each terminated by a newline.
func Write(w io.Writer, d *bdeque.Deque[string]) error {
	bw := bufio.NewWriter(w)
	for s := range d.Values() {
		if _, err := bw.WriteString(s); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
