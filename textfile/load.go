package textfile

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/segment"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Progress is the message type broadcast to subscribers during an
// asynchronous load.
type Progress struct {
	Loaded int64 // bytes read so far
	Total  int64 // file size in bytes
}

// Load reads a file, which must be a regular text file, and returns its
// content as a segment covering the whole text. Clients may recommend a
// fragment length; a fragSize of 0 lets Load pick a sensible default based
// on the file size.
func Load(name string, fragSize int64) (segment.Segment, error) {
	loading, err := LoadAsync(name, fragSize)
	if err != nil {
		return segment.Segment{}, err
	}
	return loading.Wait()
}

// LoadAsync starts loading a file in the background. The file is opened
// synchronously, so name resolution errors surface immediately; fragment
// reading then proceeds in a goroutine. Subscribers receive a Progress
// message after every fragment.
func LoadAsync(name string, fragSize int64) (*Loading, error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	size := tf.info.Size()
	if fragSize <= 0 || fragSize > tenKb {
		switch {
		case size < 64:
			fragSize = size
		case size < 1024:
			fragSize = 64
		case size < tenKb:
			fragSize = 256
		case size < hundredKb:
			fragSize = 512
		case size < oneMb:
			fragSize = twoKb
		default:
			fragSize = sixKb
		}
	}
	loading := &Loading{
		cast: caster.New(nil),
		done: make(chan struct{}),
		size: size,
	}
	go loading.run(tf, fragSize)
	return loading, nil
}

// Loading is a handle for an in-flight asynchronous load.
type Loading struct {
	cast *caster.Caster
	done chan struct{}
	size int64
	seg  segment.Segment
	err  error
}

// Subscribe attaches a progress channel to the load. The channel is closed
// when loading completes; ok is false when loading has already finished.
func (l *Loading) Subscribe(ctx context.Context) (<-chan interface{}, bool) {
	return l.cast.Sub(ctx, 1)
}

// Wait blocks until loading has finished and returns the loaded text as a
// segment covering the complete file content.
func (l *Loading) Wait() (segment.Segment, error) {
	<-l.done
	return l.seg, l.err
}

func (l *Loading) run(tf *textFile, fragSize int64) {
	defer l.cast.Close()
	defer close(l.done)
	defer tf.file.Close()
	var sb strings.Builder
	sb.Grow(int(l.size))
	buf := make([]byte, fragSize)
	var pos int64
	for pos < l.size {
		n := fragSize
		if l.size-pos < n {
			n = l.size - pos
		}
		cnt, err := tf.file.ReadAt(buf[:n], pos)
		if err != nil && err != io.EOF {
			tracer().Errorf("error loading text fragment: %v", err)
			l.err = fmt.Errorf("error loading text fragment: %w", err)
			return
		}
		if int64(cnt) < n {
			l.err = fmt.Errorf("not all bytes loaded for text fragment at %d", pos)
			return
		}
		sb.Write(buf[:n])
		pos += n
		l.cast.TryPub(Progress{Loaded: pos, Total: l.size})
	}
	l.seg = segment.FromString(sb.String())
}

// textFile represents an OS file which will be loaded as a segment.
type textFile struct {
	path string
	info os.FileInfo
	file *os.File
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{path: name, info: fi, file: file}, nil
}
