package iocli

import (
	"fmt"
	"io"
	"os"
)

// Writer реализует IO поверх произвольного io.Writer
type Writer struct {
	w io.Writer
}

// New возвращает IO, пишущий в w
func New(w io.Writer) IO {
	return &Writer{w: w}
}

// NewStdio возвращает IO, пишущий в stdout
func NewStdio() IO {
	return New(os.Stdout)
}

func (s *Writer) Println(a ...any) {
	_, _ = fmt.Fprintln(s.w, a...)
}

func (s *Writer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.w, format, a...)
}

func (s *Writer) Write(p []byte) (int, error) {
	return s.w.Write(p)
}
