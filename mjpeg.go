package dotcanvas

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// MJPEGAnimator renders frames of an MJPEG stream to a terminal as braille.
type MJPEGAnimator struct {
	w    io.Writer
	t    Terminal
	opts []Option
}

// NewMJPEGAnimator provides an animator writing to w. A nil Terminal gets
// an Xterm on the same writer.
func NewMJPEGAnimator(w io.Writer, t Terminal, opts ...Option) *MJPEGAnimator {
	if t == nil {
		t = &Xterm{Writer: w}
	}
	return &MJPEGAnimator{w: w, t: t, opts: opts}
}

// Animate draws frames from an MJPEG stream at the given frame rate until
// the stream ends. The cursor is hidden for the duration and restored on
// interrupt.
func (a *MJPEGAnimator) Animate(r io.Reader, fps int) error {
	if fps < 1 {
		fps = 1
	}
	a.t.ShowCursor(false)
	defer a.t.ShowCursor(true)
	go a.handleInterrupt()

	enc := NewEncoder(a.w, a.opts...)

	reader := MJPEGReader{Reader: r}
	for frame := range reader.ReadAll() {
		if frame.err != nil {
			return frame.err
		}

		delay := time.After(time.Second / time.Duration(fps))

		if err := enc.Encode(frame.img); err != nil {
			return err
		}
		rows := frame.img.Bounds().Dy() / CellPixelHeight
		if frame.img.Bounds().Dy()%CellPixelHeight != 0 {
			rows++
		}
		a.t.ResetCursor(rows)

		<-delay
	}
	return nil
}

func (a *MJPEGAnimator) handleInterrupt() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-signals
		a.t.ShowCursor(true)
		signal.Stop(signals)
		if signum, ok := s.(syscall.Signal); ok {
			// Re-raise so the default handler terminates the process.
			syscall.Kill(syscall.Getpid(), signum)
		} else {
			panic(fmt.Sprintf("unexpected signal: %v", s))
		}
	}()
}

type frame struct {
	img image.Image
	err error
}

// MJPEGReader splits a raw MJPEG byte stream into decoded frames on the
// JPEG end-of-image marker.
type MJPEGReader struct {
	Reader io.Reader
}

// ReadAll decodes frames until the underlying reader is exhausted. Frames
// arriving faster than the receiver drains them are dropped.
func (m *MJPEGReader) ReadAll() <-chan frame {
	frames := make(chan frame)
	go func() {
		defer close(frames)

		var buf bytes.Buffer
		p := make([]byte, 1)
		for {
			n, err := m.Reader.Read(p)
			if n == 0 {
				if err == nil {
					continue
				}
				if err != io.EOF {
					frames <- frame{err: err}
				}
				return
			}

			buf.Write(p)

			if buf.Len() > 1 {
				data := buf.Bytes()
				if data[buf.Len()-2] == 0xff && data[buf.Len()-1] == 0xd9 {
					img, err := jpeg.Decode(&buf)
					if err != nil {
						frames <- frame{err: err}
						return
					}
					select {
					case frames <- frame{img: img}:
					default:
						buf.Truncate(0)
					}
				}
			}
		}
	}()
	return frames
}
