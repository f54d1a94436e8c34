package interp

import (
	"runtime"
	"strconv"
	"time"

	"github.com/consize-lang/consize/pkg/reader"
	"github.com/consize-lang/consize/pkg/value"
)

func builtinUncomment(s *value.State) error {
	w, err := popWord(s, "uncomment")
	if err != nil {
		return err
	}
	s.PushData(value.Word(reader.Uncomment(string(w))))
	return nil
}

func builtinTokenize(s *value.State) error {
	w, err := popWord(s, "tokenize")
	if err != nil {
		return err
	}
	s.PushData(reader.Tokenize(string(w)))
	return nil
}

func builtinCurrentTimeMillis(s *value.State) error {
	ms := time.Now().UnixMilli()
	if s.Clock != nil {
		ms = s.Clock()
	}
	s.PushData(value.Word(strconv.FormatInt(ms, 10)))
	return nil
}

func builtinOperatingSystem(s *value.State) error {
	osName := s.OS
	if osName == "" {
		osName = runtime.GOOS
	}
	s.PushData(value.Word(osName))
	return nil
}
