package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/consize-lang/consize/pkg/value"
)

func stdout(s *value.State) io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

// builtinPrint writes the top value's §4.A rendering with no trailing
// newline and consumes it (`| x | -> | |`), matching the ground-truth
// original's `datastack.pop()` in `print`.
func builtinPrint(s *value.State) error {
	v, err := popData(s, "print")
	if err != nil {
		return err
	}
	fmt.Fprint(stdout(s), value.RenderTop(v))
	return nil
}

func builtinFlush(s *value.State) error {
	f, ok := stdout(s).(*os.File)
	if !ok {
		return nil
	}
	if err := f.Sync(); err != nil {
		return ioErr("flush", err)
	}
	return nil
}

// builtinReadLine reads one line from standard input, including its
// trailing newline if present, and pushes it as a Word.
func builtinReadLine(s *value.State) error {
	var r io.Reader = os.Stdin
	if s.Stdin != nil {
		r = s.Stdin
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return ioErr("read-line", err)
	}
	s.PushData(value.Word(line))
	return nil
}

func builtinSlurp(s *value.State) error {
	path, err := popWord(s, "slurp")
	if err != nil {
		return err
	}
	data, rerr := os.ReadFile(string(path))
	if rerr != nil {
		return ioErr("slurp", errors.Wrapf(rerr, "reading %q", string(path)))
	}
	s.PushData(value.Word(string(data)))
	return nil
}

// builtinSpit implements `| path data | -> | |`, truncating the file.
func builtinSpit(s *value.State) error {
	data, err := popWord(s, "spit")
	if err != nil {
		return err
	}
	path, err := popWord(s, "spit")
	if err != nil {
		return err
	}
	if werr := os.WriteFile(string(path), []byte(data), 0o644); werr != nil {
		return ioErr("spit", errors.Wrapf(werr, "writing %q", string(path)))
	}
	return nil
}

// builtinSpitOn implements `| path data | -> | |`, appending to an existing
// file.
func builtinSpitOn(s *value.State) error {
	data, err := popWord(s, "spit-on")
	if err != nil {
		return err
	}
	path, err := popWord(s, "spit-on")
	if err != nil {
		return err
	}
	f, oerr := os.OpenFile(string(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if oerr != nil {
		return ioErr("spit-on", errors.Wrapf(oerr, "opening %q", string(path)))
	}
	defer f.Close()
	if _, werr := f.WriteString(string(data)); werr != nil {
		return ioErr("spit-on", errors.Wrapf(werr, "appending to %q", string(path)))
	}
	return nil
}
