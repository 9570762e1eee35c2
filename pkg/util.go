package pkg

import (
	"fmt"
	"io"
	"os"
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
	log "github.com/sirupsen/logrus"
)

// InitLog sends the standard logger to dest at the given level and tags
// every entry with component. The terminal belongs to the interface, so
// an empty dest discards all output. The returned file, if any, should be
// closed on exit.
func InitLog(dest, level, component string) (*os.File, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	if component != "" {
		log.AddHook(componentHook(component))
	}

	if dest == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	log.SetOutput(f)

	return f, nil
}

type componentHook string

func (h componentHook) Levels() []log.Level {
	return log.AllLevels
}

func (h componentHook) Fire(e *log.Entry) error {
	e.Data["component"] = string(h)
	return nil
}

const maxNickLength = 10

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-!@#$%^&*+=,./]+`)

// Nickname strips characters that do not render well and truncates the
// result. An empty name is replaced with a generated one.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if nick == "" {
		nick = nickRegexp.ReplaceAllString(petname.Generate(2, "-"), "")
	}
	if len(nick) > maxNickLength {
		nick = nick[:maxNickLength]
	}

	return nick
}
